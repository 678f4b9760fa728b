package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/database"
	"gemtrade/loader"
	"gemtrade/logger"
	"gemtrade/model"
	"gemtrade/respond"
)

// Handler serves GET (list) and POST (create) on /api/clients.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			clients, err := database.GetAllClients(db)
			if err != nil {
				respond.StoreError(w, "clients", err)
				return
			}
			respond.JSON(w, http.StatusOK, clients)
			return
		}

		var c model.Client
		if !respond.Decode(w, r, &c) {
			return
		}
		if err := validate(&c); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateClient(db, &c); err != nil {
			respond.StoreError(w, "client", err)
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
		var c model.Client
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
		if err := database.UpdateClient(db, c); err != nil {
			respond.StoreError(w, "client", err)
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
		id, ok := respond.PathID(w, r, "/api/clients/delete/")
		if !ok {
			return
		}
		if err := database.DeleteClient(db, id); err != nil {
			respond.StoreError(w, "client", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

// ImportClientsHandler upserts clients by name from an uploaded CSV.
func ImportClientsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost) {
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			respond.Error(w, "failed to read uploaded file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		result, err := loader.ImportClientsCSV(db, file, r.FormValue("encoding"))
		if err != nil {
			if errors.Is(err, loader.ErrInvalidUpload) {
				respond.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			respond.StoreError(w, "client import", err)
			return
		}
		for _, s := range result.Skipped {
			logger.Warn("client import row skipped", "reason", s)
		}
		respond.JSON(w, http.StatusOK, result)
	}
}

func validate(c *model.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.ClientType != "" {
		t, ok := NormaliseType(c.ClientType)
		if !ok {
			return fmt.Errorf("unknown client type %q", c.ClientType)
		}
		c.ClientType = t
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("invalid email %q", c.Email)
		}
	}
	return nil
}

// NormaliseType maps a client type to its canonical spelling. "Jeweller"
// is accepted for Jeweler.
func NormaliseType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "Jeweller") {
		return model.ClientJeweler, true
	}
	for _, t := range model.ClientTypes {
		if strings.EqualFold(s, t) {
			return t, true
		}
	}
	return "", false
}
