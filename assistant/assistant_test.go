package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"gemtrade/model"
)

func TestChatSendsHistoryAndContext(t *testing.T) {
	var got generateRequest
	var path, key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path + "?" + r.URL.RawQuery
		key = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Ruby "},{"text":"leads."}]}}]}`)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", Model: "test-model", Endpoint: srv.URL})

	var history []Turn
	for i := 0; i < 14; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, Turn{Role: role, Text: fmt.Sprintf("turn %d", i)})
	}

	reply, err := c.Chat(context.Background(), "BUSINESS SUMMARY\nRevenue", history, "Which stone sells best?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Ruby leads." {
		t.Errorf("expected joined reply, got %q", reply)
	}
	if path != "/test-model:generateContent?" {
		t.Errorf("expected no query string, got %q", path)
	}
	if key != "k" {
		t.Errorf("expected API key header, got %q", key)
	}
	if len(got.Contents) != MaxHistory+1 {
		t.Fatalf("expected %d contents, got %d", MaxHistory+1, len(got.Contents))
	}
	if got.Contents[0].Parts[0].Text != "turn 4" {
		t.Errorf("expected history to start at turn 4, got %q", got.Contents[0].Parts[0].Text)
	}
	if got.Contents[1].Role != RoleModel {
		t.Errorf("expected assistant role mapped to model, got %q", got.Contents[1].Role)
	}
	last := got.Contents[len(got.Contents)-1]
	if last.Role != RoleUser || last.Parts[0].Text != "Which stone sells best?" {
		t.Errorf("unexpected final turn %+v", last)
	}
	if got.SystemInstruction == nil || !strings.Contains(got.SystemInstruction.Parts[0].Text, "BUSINESS SUMMARY") {
		t.Errorf("expected business context in system instruction")
	}
}

func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid"}}`)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "bad", Endpoint: srv.URL})
	_, err := c.Chat(context.Background(), "", nil, "hi")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected wrapped API error, got %v", err)
	}
}

func TestChatWithoutKey(t *testing.T) {
	c := New(Config{})
	if c.Enabled() {
		t.Errorf("expected client without key to be disabled")
	}
	if _, err := c.Chat(context.Background(), "", nil, "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestBuildContext(t *testing.T) {
	snap := model.Snapshot{
		ClientRanking: []model.ClientRevenueSummary{
			{Client: model.Client{Name: "Raj Jewellers", ClientType: "Jeweller"}, TotalRevenue: 175000, TotalPurchases: 2},
		},
		StonePerformance: []model.StonePerformanceSummary{
			{Type: "Ruby", TotalSales: 2, TotalRevenue: 175000, AvgPrice: 50000, StockLevel: 3},
		},
		LowStock:         model.LowStockSummary{Count: 1, ExampleTypes: []string{"Ruby"}},
		AverageSaleValue: 87500,
		PeakSeason:       true,
	}
	overview := model.Overview{TotalRevenue: 175000, InventoryItems: 1}
	insights := []model.Insight{{Title: "Low Stock Alert", Description: "1 items are running low", Priority: model.InsightHigh}}

	got := BuildContext(snap, overview, insights)
	for _, want := range []string{
		"Total revenue: ₹175,000.00",
		"Raj Jewellers (Jeweller)",
		"- Ruby: 2 sales",
		"Low stock items: 1 (e.g. Ruby)",
		"Season: peak",
		"[high] Low Stock Alert",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected context to contain %q, got:\n%s", want, got)
		}
	}
}

func TestTransportErrorOmitsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c := New(Config{APIKey: "secret-key", Model: "test-model", Endpoint: endpoint})
	_, err := c.Chat(context.Background(), "", nil, "hello")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("expected error without the API key, got %v", err)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("a", 9) + "₹₹"
	got := truncate(s, 10)
	if !utf8.ValidString(got) {
		t.Errorf("expected valid UTF-8, got %q", got)
	}
	if got != strings.Repeat("a", 9)+"..." {
		t.Errorf("expected cut before the rupee sign, got %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected short string unchanged, got %q", got)
	}
}
