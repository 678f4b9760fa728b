package sales

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"gemtrade/database"
	"gemtrade/logger"
	"gemtrade/model"
	"gemtrade/money"
	"gemtrade/respond"
)

var statuses = []string{model.SaleCompleted, model.SalePending, model.SaleCancelled}

// Handler lists sales with client and stone names on GET and records a
// sale on POST.
func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			views, err := database.GetSaleViews(db)
			if err != nil {
				respond.StoreError(w, "sales", err)
				return
			}
			respond.JSON(w, http.StatusOK, views)
			return
		}

		var s model.Sale
		if !respond.Decode(w, r, &s) {
			return
		}
		if err := validate(&s); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateSale(db, &s); err != nil {
			respond.StoreError(w, "sale", err)
			return
		}
		logger.Info("sale recorded", "id", s.ID, "amount", s.TotalAmount, "client", s.ClientID)
		respond.JSON(w, http.StatusCreated, s)
	}
}

func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var s model.Sale
		if !respond.Decode(w, r, &s) {
			return
		}
		if s.ID == "" {
			respond.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := validate(&s); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if s.Status == "" {
			s.Status = model.SaleCompleted
		}
		if err := database.UpdateSale(db, s); err != nil {
			respond.StoreError(w, "sale", err)
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
		id, ok := respond.PathID(w, r, "/api/sales/delete/")
		if !ok {
			return
		}
		if err := database.DeleteSale(db, id); err != nil {
			respond.StoreError(w, "sale", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

func validate(s *model.Sale) error {
	if err := money.CheckAmount("totalAmount", s.TotalAmount); err != nil {
		return err
	}
	if err := money.CheckAmount("carat", s.Carat); err != nil {
		return err
	}
	s.SaleDate = strings.TrimSpace(s.SaleDate)
	if s.SaleDate != "" {
		if _, err := time.Parse("2006-01-02", s.SaleDate); err != nil {
			return fmt.Errorf("saleDate must be YYYY-MM-DD, got %q", s.SaleDate)
		}
	}
	if s.Status != "" {
		for _, st := range statuses {
			if strings.EqualFold(s.Status, st) {
				s.Status = st
				return nil
			}
		}
		return fmt.Errorf("unknown status %q", s.Status)
	}
	return nil
}
