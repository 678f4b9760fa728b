package consultation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/consultation"
	"gemtrade/dbtest"
	"gemtrade/model"
)

func TestConsultations(t *testing.T) {
	db := dbtest.Open(t)

	rec := httptest.NewRecorder()
	consultation.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/consultations",
		strings.NewReader(`{"clientId":"c1","consultationDate":"2025-11-03","consultationType":"Astrology","fee":"2500"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var c model.Consultation
	json.NewDecoder(rec.Body).Decode(&c)
	if c.Status != "Scheduled" {
		t.Errorf("expected Scheduled, got %s", c.Status)
	}

	for _, body := range []string{`{"fee":"100"}`, `{"clientId":"c1","fee":"-100"}`} {
		rec = httptest.NewRecorder()
		consultation.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/consultations", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}

	c.Status = "Completed"
	payload, _ := json.Marshal(c)
	rec = httptest.NewRecorder()
	consultation.UpdateHandler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/consultations/update", strings.NewReader(string(payload))))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	consultation.DeleteHandler(db)(rec, httptest.NewRequest(http.MethodDelete, "/api/consultations/delete/"+c.ID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
