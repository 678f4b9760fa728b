package finance

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gemtrade/aggregation"
	"gemtrade/database"
	"gemtrade/model"
	"gemtrade/money"
	"gemtrade/respond"
)

// ExpensesHandler lists expenses on GET and records one on POST.
func ExpensesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodGet {
			expenses, err := database.GetAllExpenses(db)
			if err != nil {
				respond.StoreError(w, "expenses", err)
				return
			}
			respond.JSON(w, http.StatusOK, expenses)
			return
		}

		var e model.Expense
		if !respond.Decode(w, r, &e) {
			return
		}
		if err := validate(&e); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.CreateExpense(db, &e); err != nil {
			respond.StoreError(w, "expense", err)
			return
		}
		respond.JSON(w, http.StatusCreated, e)
	}
}

func UpdateExpenseHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost, http.MethodPut) {
			return
		}
		var e model.Expense
		if !respond.Decode(w, r, &e) {
			return
		}
		if e.ID == "" {
			respond.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := validate(&e); err != nil {
			respond.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := database.UpdateExpense(db, e); err != nil {
			respond.StoreError(w, "expense", err)
			return
		}
		respond.JSON(w, http.StatusOK, e)
	}
}

func DeleteExpenseHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodDelete, http.MethodPost) {
			return
		}
		id, ok := respond.PathID(w, r, "/api/expenses/delete/")
		if !ok {
			return
		}
		if err := database.DeleteExpense(db, id); err != nil {
			respond.StoreError(w, "expense", err)
			return
		}
		respond.Message(w, "deleted")
	}
}

// SummaryHandler returns revenue, expenses and net profit overall and by month.
func SummaryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet) {
			return
		}
		in, err := database.LoadCollections(db)
		if err != nil {
			respond.StoreError(w, "finance summary", err)
			return
		}
		respond.JSON(w, http.StatusOK, aggregation.SummariseFinance(in.Sales, in.Expenses, in.Consultations))
	}
}

func validate(e *model.Expense) error {
	e.Category = strings.TrimSpace(e.Category)
	if strings.TrimSpace(e.Amount) == "" {
		return errors.New("amount is required")
	}
	return money.CheckAmount("amount", e.Amount)
}
