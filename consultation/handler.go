package consultation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/database"
	"gemtrade/model"
	"gemtrade/money"
	"gemtrade/respond"
)

func Handler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			list, err := database.GetAllConsultations(db)
			if err != nil {
				respond.StoreError(w, "consultations", err)
				return
			}
			respond.JSON(w, http.StatusOK, list)
			return
		}

		var c model.Consultation
		if !respond.Decode(w, r, &c) {
			return
		}
		if err := validate(&c); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateConsultation(db, &c); err != nil {
			respond.StoreError(w, "consultation", err)
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
		var c model.Consultation
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
		if err := database.UpdateConsultation(db, c); err != nil {
			respond.StoreError(w, "consultation", err)
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
		id, ok := respond.PathID(w, r, "/api/consultations/delete/")
		if !ok {
			return
		}
		if err := database.DeleteConsultation(db, id); err != nil {
			respond.StoreError(w, "consultation", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

func validate(c *model.Consultation) error {
	c.ClientID = strings.TrimSpace(c.ClientID)
	if c.ClientID == "" {
		return errors.New("clientId is required")
	}
	return money.CheckAmount("fee", c.Fee)
}
