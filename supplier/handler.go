package supplier

import (
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/database"
	"gemtrade/model"
	"gemtrade/respond"
)

// Handler lists suppliers on GET and creates one on POST.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			suppliers, err := database.GetAllSuppliers(db)
			if err != nil {
				respond.StoreError(w, "suppliers", err)
				return
			}
			respond.JSON(w, http.StatusOK, suppliers)
			return
		}

		var s model.Supplier
		if !respond.Decode(w, r, &s) {
			return
		}
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			respond.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := database.CreateSupplier(db, &s); err != nil {
			respond.StoreError(w, "supplier", err)
			return
		}
		respond.JSON(w, http.StatusCreated, s)
	}
}

func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var s model.Supplier
		if !respond.Decode(w, r, &s) {
			return
		}
		s.Name = strings.TrimSpace(s.Name)
		if s.ID == "" || s.Name == "" {
			respond.Error(w, "id and name are required", http.StatusBadRequest)
			return
		}
		if err := database.UpdateSupplier(db, s); err != nil {
			respond.StoreError(w, "supplier", err)
			return
		}
		respond.JSON(w, http.StatusOK, s)
	}
}

func DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodDelete, http.MethodPost) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/suppliers/delete/")
		if !ok {
			return
		}
		if err := database.DeleteSupplier(db, id); err != nil {
			respond.StoreError(w, "supplier", err)
			return
		}
		respond.Message(w, "deleted")
	}
}
