package certification

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/database"
	"gemtrade/logger"
	"gemtrade/model"
	"gemtrade/respond"
	"gemtrade/storage"
)

// MaxDocumentSize caps an uploaded certificate scan.
const MaxDocumentSize = 10 << 20

// Handler lists certificates on GET (optionally ?stoneId=) and creates one
// on POST, marking the stone certified.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			var (
				certs []model.Certification
				err   error
			)
			if stoneID := r.URL.Query().Get("stoneId"); stoneID != "" {
				certs, err = database.GetCertificationsByStone(db, stoneID)
			} else {
				certs, err = database.GetAllCertifications(db)
			}
			if err != nil {
				respond.StoreError(w, "certifications", err)
				return
			}
			respond.JSON(w, http.StatusOK, certs)
			return
		}

		var c model.Certification
		if !respond.Decode(w, r, &c) {
			return
		}
		if err := validate(&c); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		c.DocumentKey = ""
		if err := database.CreateCertification(db, &c); err != nil {
			respond.StoreError(w, "certification", err)
			return
		}
		respond.JSON(w, http.StatusCreated, c)
	}
}

func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var c model.Certification
		if !respond.Decode(w, r, &c) {
			return
		}
		if c.ID == "" {
			respond.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := validate(&c); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.UpdateCertification(db, c); err != nil {
			respond.StoreError(w, "certification", err)
			return
		}
		respond.JSON(w, http.StatusOK, c)
	}
}

func DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodDelete, http.MethodPost) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/certifications/delete/")
		if !ok {
			return
		}
		if err := database.DeleteCertification(db, id); err != nil {
			respond.StoreError(w, "certification", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

// DocumentHandler uploads (POST, multipart "file") or downloads (GET) the
// scanned document of /api/certifications/document/{id}.
func DocumentHandler(db *sqlx.DB, store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if store == nil {
			respond.Error(w, "document storage is not configured", http.StatusServiceUnavailable)
			return
		}
		id, ok := respond.PathID(w, r, "/api/certifications/document/")
		if !ok {
			return
		}
		cert, err := database.GetCertificationByID(db, id)
		if err != nil {
			respond.StoreError(w, "certification", err)
			return
		}
		if cert == nil {
			respond.Error(w, "certification not found", http.StatusNotFound)
			return
		}

		if r.Method == http.MethodGet {
			download(w, r, store, cert)
			return
		}
		upload(w, r, db, store, cert)
	}
}

func upload(w http.ResponseWriter, r *http.Request, db *sqlx.DB, store storage.Store, cert *model.Certification) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxDocumentSize+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, "failed to read uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxDocumentSize+1))
	if err != nil {
		respond.Error(w, "failed to read uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(data) > MaxDocumentSize {
		respond.Error(w, "document is larger than 10 MB", http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		respond.Error(w, "document is empty", http.StatusBadRequest)
		return
	}

	key := storage.CertificateKey(cert.ID, header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if err := store.Put(r.Context(), key, data, contentType); err != nil {
		logger.Error("certificate upload failed", "id", cert.ID, "key", key, "error", err)
		respond.Error(w, "failed to store document", http.StatusBadGateway)
		return
	}
	if err := database.SetCertificationDocument(db, cert.ID, key); err != nil {
		respond.StoreError(w, "certification", err)
		return
	}
	logger.Info("certificate document stored", "id", cert.ID, "key", key, "size", len(data))
	respond.JSON(w, http.StatusOK, map[string]string{"documentKey": key})
}

func download(w http.ResponseWriter, r *http.Request, store storage.Store, cert *model.Certification) {
	if cert.DocumentKey == "" {
		respond.Error(w, "no document uploaded for this certification", http.StatusNotFound)
		return
	}
	data, err := store.Get(r.Context(), cert.DocumentKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, "document not found in storage", http.StatusNotFound)
			return
		}
		logger.Error("certificate download failed", "id", cert.ID, "key", cert.DocumentKey, "error", err)
		respond.Error(w, "failed to load document", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", path.Base(cert.DocumentKey)))
	w.Write(data)
}

func validate(c *model.Certification) error {
	c.StoneID = strings.TrimSpace(c.StoneID)
	c.CertificateNumber = strings.TrimSpace(c.CertificateNumber)
	if c.StoneID == "" || c.CertificateNumber == "" {
		return errors.New("stoneId and certificateNumber are required")
	}
	return nil
}
