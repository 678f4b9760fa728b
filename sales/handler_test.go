package sales_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/database"
	"gemtrade/dbtest"
	"gemtrade/model"
	"gemtrade/sales"
)

func TestCreateSale(t *testing.T) {
	db := dbtest.Open(t)
	c := model.Client{Name: "Raj Jewellers"}
	if err := database.CreateClient(db, &c); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		body string
		want int
	}{
		{`{"clientId":"` + c.ID + `","stoneId":"gone","totalAmount":"100000","saleDate":"2025-11-01"}`, http.StatusCreated},
		{`{"totalAmount":"75000","status":"pending"}`, http.StatusCreated},
		{`{"totalAmount":"-1"}`, http.StatusBadRequest},
		{`{"totalAmount":"1e400"}`, http.StatusBadRequest},
		{`{"saleDate":"01/11/2025"}`, http.StatusBadRequest},
		{`{"status":"Refunded"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		sales.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(tt.body)))
		if rec.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.body, tt.want, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	sales.Handler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/sales", nil))
	var views []model.SaleView
	json.NewDecoder(rec.Body).Decode(&views)
	if len(views) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(views))
	}
	byAmount := map[string]model.SaleView{}
	for _, v := range views {
		byAmount[v.TotalAmount] = v
	}
	if v := byAmount["100000"]; v.ClientName != "Raj Jewellers" || v.StoneType != database.UnknownName || v.Status != model.SaleCompleted {
		t.Errorf("unexpected view %+v", v)
	}
	if v := byAmount["75000"]; v.Status != model.SalePending || v.ClientName != database.UnknownName {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestDeleteSaleNotFound(t *testing.T) {
	db := dbtest.Open(t)
	rec := httptest.NewRecorder()
	sales.DeleteHandler(db)(rec, httptest.NewRequest(http.MethodDelete, "/api/sales/delete/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
