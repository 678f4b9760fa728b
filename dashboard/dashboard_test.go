package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gemtrade/database"
	"gemtrade/dashboard"
	"gemtrade/dbtest"
	"gemtrade/model"
)

func seed(t *testing.T) *dashboardFixture {
	t.Helper()
	db := dbtest.Open(t)
	f := &dashboardFixture{}

	for _, name := range []string{"A", "B", "C", "D"} {
		c := model.Client{Name: name}
		if err := database.CreateClient(db, &c); err != nil {
			t.Fatal(err)
		}
		f.clients = append(f.clients, c)
	}
	stones := []model.InventoryItem{
		{Type: "Ruby", Quantity: "3", PricePerCarat: "50000", SellingPrice: "120000"},
		{Type: "Emerald", Quantity: "10", PricePerCarat: "30000", SellingPrice: "80000"},
	}
	for i := range stones {
		if err := database.CreateInventory(db, &stones[i]); err != nil {
			t.Fatal(err)
		}
	}
	amounts := []string{"100000", "75000", "120000", "5000"}
	for i, amt := range amounts {
		s := model.Sale{ClientID: f.clients[i].ID, StoneID: stones[0].ID, TotalAmount: amt, SaleDate: "2025-11-01"}
		if err := database.CreateSale(db, &s); err != nil {
			t.Fatal(err)
		}
	}
	f.handler = dashboard.Handler(db)
	f.insights = dashboard.InsightsHandler(db)
	return f
}

type dashboardFixture struct {
	clients  []model.Client
	handler  http.HandlerFunc
	insights http.HandlerFunc
}

func TestDashboard(t *testing.T) {
	f := seed(t)

	rec := httptest.NewRecorder()
	f.handler(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard?date=2025-11-10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var d dashboard.Dashboard
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatal(err)
	}

	if len(d.TopClients) != 3 {
		t.Fatalf("expected top 3 clients, got %d", len(d.TopClients))
	}
	wantOrder := []string{"C", "A", "B"}
	for i, want := range wantOrder {
		if d.TopClients[i].Client.Name != want {
			t.Errorf("rank %d: expected %s, got %s", i, want, d.TopClients[i].Client.Name)
		}
	}
	if !d.PeakSeason {
		t.Errorf("expected peak season for November")
	}
	if d.Overview.SalesThisMonth != 4 || d.Overview.TotalRevenue != 300000 {
		t.Errorf("unexpected overview %+v", d.Overview)
	}
	if d.AverageSaleValue != 75000 {
		t.Errorf("expected average 75000, got %v", d.AverageSaleValue)
	}
	if len(d.TopStones) != 2 || d.TopStones[0].Type != "Ruby" || d.TopStones[0].TotalSales != 4 {
		t.Errorf("unexpected stone ranking %+v", d.TopStones)
	}
	if len(d.Insights) == 0 || d.Insights[0].Title != "Low Stock Alert" {
		t.Errorf("expected low stock insight first, got %+v", d.Insights)
	}
}

func TestDashboardDateOverride(t *testing.T) {
	f := seed(t)

	rec := httptest.NewRecorder()
	f.insights(rec, httptest.NewRequest(http.MethodGet, "/api/insights?date=2025-06-10", nil))
	var got []model.Insight
	json.NewDecoder(rec.Body).Decode(&got)
	for _, in := range got {
		if in.Title == "Seasonal Demand Approaching" {
			t.Errorf("expected no seasonal insight in June")
		}
	}
	if len(got) > 4 {
		t.Errorf("expected at most 4 insights, got %d", len(got))
	}

	rec = httptest.NewRecorder()
	f.handler(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard?date=10-06-2025", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", rec.Code)
	}
}

func TestDashboardWithOverflowingStoredAmounts(t *testing.T) {
	db := dbtest.Open(t)
	// CSV imports and older rows are not range checked.
	for _, amount := range []string{"1e400", "-1e400", "1.7e308", "1.7e308"} {
		s := model.Sale{TotalAmount: amount, SaleDate: "2025-03-01"}
		if err := database.CreateSale(db, &s); err != nil {
			t.Fatal(err)
		}
	}

	endpoints := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/api/dashboard?date=2025-03-10", dashboard.Handler(db)},
		{"/api/insights?date=2025-03-10", dashboard.InsightsHandler(db)},
	}
	for _, e := range endpoints {
		rec := httptest.NewRecorder()
		e.handler(rec, httptest.NewRequest(http.MethodGet, e.path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d: %s", e.path, rec.Code, rec.Body.String())
		}
	}
}
