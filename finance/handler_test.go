package finance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/database"
	"gemtrade/dbtest"
	"gemtrade/finance"
	"gemtrade/model"
)

func TestExpensesAndSummary(t *testing.T) {
	db := dbtest.Open(t)

	for _, body := range []string{
		`{"category":"Rent","amount":"20000","expenseDate":"2025-10-01"}`,
		`{"category":"","amount":"5000","expenseDate":"2025-11-02"}`,
	} {
		rec := httptest.NewRecorder()
		finance.ExpensesHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	}
	for _, body := range []string{`{"category":"Rent"}`, `{"amount":"-3"}`} {
		rec := httptest.NewRecorder()
		finance.ExpensesHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}

	sales := []model.Sale{
		{TotalAmount: "100000", SaleDate: "2025-10-15", Status: model.SaleCompleted},
		{TotalAmount: "50000", SaleDate: "2025-11-01", Status: model.SalePending},
	}
	for i := range sales {
		if err := database.CreateSale(db, &sales[i]); err != nil {
			t.Fatal(err)
		}
	}
	cons := model.Consultation{ClientID: "c1", ConsultationDate: "2025-11-03", Fee: "2500", Status: "Completed"}
	if err := database.CreateConsultation(db, &cons); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	finance.SummaryHandler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/finance/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var s model.FinanceSummary
	json.NewDecoder(rec.Body).Decode(&s)
	if s.SalesRevenue != 100000 || s.ConsultationRevenue != 2500 || s.TotalExpenses != 25000 {
		t.Errorf("unexpected totals %+v", s)
	}
	if s.NetProfit != s.TotalRevenue-s.TotalExpenses {
		t.Errorf("expected net = revenue - expenses, got %+v", s)
	}
	if s.ExpensesByCategory["Uncategorised"] != 5000 {
		t.Errorf("expected uncategorised expense, got %v", s.ExpensesByCategory)
	}
	if len(s.Monthly) != 2 || s.Monthly[0].Month != "2025-10" || s.Monthly[1].Net != -2500 {
		t.Errorf("unexpected monthly breakdown %+v", s.Monthly)
	}
}
