package assistant_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/assistant"
	"gemtrade/dbtest"
)

func TestChatHandler(t *testing.T) {
	db := dbtest.Open(t)
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"No sales yet."}]}}]}`)
	}))
	defer gemini.Close()

	h := assistant.ChatHandler(db, assistant.New(assistant.Config{APIKey: "k", Endpoint: gemini.URL}))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":"How are sales?"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp assistant.ChatResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Reply != "No sales yet." {
		t.Errorf("unexpected reply %q", resp.Reply)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":"  "}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty message, got %d", rec.Code)
	}
}

func TestChatHandlerUpstreamFailure(t *testing.T) {
	db := dbtest.Open(t)
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer gemini.Close()

	h := assistant.ChatHandler(db, assistant.New(assistant.Config{APIKey: "k", Endpoint: gemini.URL}))
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":"hi"}`)))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestChatHandlerWithoutKey(t *testing.T) {
	db := dbtest.Open(t)
	rec := httptest.NewRecorder()
	assistant.ChatHandler(db, assistant.New(assistant.Config{}))(rec,
		httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":"hi"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
