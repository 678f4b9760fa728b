package respond

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/database"
)

func TestStoreError(t *testing.T) {
	rec := httptest.NewRecorder()
	StoreError(rec, "client", fmt.Errorf("update: %w", database.ErrNotFound))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message":"client not found"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	StoreError(rec, "client", fmt.Errorf("disk full"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestPathID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/clients/delete/abc", nil)
	id, ok := PathID(rec, req, "/api/clients/delete/")
	if !ok || id != "abc" {
		t.Errorf("expected abc, got %q %v", id, ok)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/clients/delete/", nil)
	if _, ok := PathID(rec, req, "/api/clients/delete/"); ok || rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing id, got %d", rec.Code)
	}
}

func TestMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	if Method(rec, req, http.MethodGet, http.MethodPost) {
		t.Errorf("expected PUT to be rejected")
	}
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != "GET, POST" {
		t.Errorf("unexpected response %d %q", rec.Code, rec.Header().Get("Allow"))
	}
}
