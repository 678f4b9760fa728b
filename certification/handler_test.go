package certification_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gemtrade/certification"
	"gemtrade/database"
	"gemtrade/dbtest"
	"gemtrade/model"
	"gemtrade/storage"
)

func createCert(t *testing.T, h http.HandlerFunc, stoneID string) model.Certification {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/certifications",
		strings.NewReader(`{"stoneId":"`+stoneID+`","certificateNumber":"GIA-2201","lab":"GIA","grade":"AAA"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var c model.Certification
	json.NewDecoder(rec.Body).Decode(&c)
	return c
}

func TestCreateMarksStoneCertified(t *testing.T) {
	db := dbtest.Open(t)
	stone := model.InventoryItem{Type: "Ruby", Quantity: "1"}
	if err := database.CreateInventory(db, &stone); err != nil {
		t.Fatal(err)
	}

	createCert(t, certification.Handler(db), stone.ID)

	got, _ := database.GetInventoryByID(db, stone.ID)
	if !got.Certified {
		t.Errorf("expected stone to be marked certified")
	}

	rec := httptest.NewRecorder()
	certification.Handler(db)(rec, httptest.NewRequest(http.MethodGet, "/api/certifications?stoneId="+stone.ID, nil))
	var certs []model.Certification
	json.NewDecoder(rec.Body).Decode(&certs)
	if len(certs) != 1 {
		t.Errorf("expected 1 certificate for stone, got %d", len(certs))
	}

	rec = httptest.NewRecorder()
	certification.Handler(db)(rec, httptest.NewRequest(http.MethodPost, "/api/certifications", strings.NewReader(`{"lab":"GIA"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDocumentUploadAndDownload(t *testing.T) {
	db := dbtest.Open(t)
	store := storage.NewMemory()
	cert := createCert(t, certification.Handler(db), "stone-1")
	h := certification.DocumentHandler(db, store)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/certifications/document/"+cert.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 before upload, got %d", rec.Code)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "scan.pdf")
	fw.Write([]byte("%PDF-1.4 certificate"))
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/certifications/document/"+cert.ID, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec = httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	wantKey := "certificates/" + cert.ID + "/scan.pdf"
	if store.ContentType(wantKey) != "application/pdf" {
		t.Errorf("expected stored pdf at %s, got type %q", wantKey, store.ContentType(wantKey))
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/certifications/document/"+cert.ID, nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "%PDF-1.4 certificate" {
		t.Errorf("expected document back, got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/certifications/document/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown certification, got %d", rec.Code)
	}
}

func TestDocumentWithoutStorage(t *testing.T) {
	db := dbtest.Open(t)
	rec := httptest.NewRecorder()
	certification.DocumentHandler(db, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/certifications/document/x", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
