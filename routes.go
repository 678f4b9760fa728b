package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"gemtrade/assistant"
	"gemtrade/certification"
	"gemtrade/client"
	"gemtrade/consultation"
	"gemtrade/dashboard"
	"gemtrade/document"
	"gemtrade/finance"
	"gemtrade/inventory"
	"gemtrade/report"
	"gemtrade/respond"
	"gemtrade/sales"
	"gemtrade/storage"
	"gemtrade/supplier"
	"gemtrade/task"
)

// Services are the optional collaborators of the HTTP handlers. Nil fields
// disable the features that need them.
type Services struct {
	Assistant *assistant.Client
	PDF       document.PDFRenderer
	Store     storage.Store
}

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, svc Services) {
	mux.HandleFunc("/api/inventory", inventory.Handler(dbConn))
	mux.HandleFunc("/api/inventory/update", inventory.UpdateHandler(dbConn))
	mux.HandleFunc("/api/inventory/delete/", inventory.DeleteHandler(dbConn))
	mux.HandleFunc("/api/inventory/by_code/", inventory.ByCodeHandler(dbConn))
	mux.HandleFunc("/api/inventory/import", inventory.ImportHandler(dbConn))

	mux.HandleFunc("/api/sales", sales.Handler(dbConn))
	mux.HandleFunc("/api/sales/update", sales.UpdateHandler(dbConn))
	mux.HandleFunc("/api/sales/delete/", sales.DeleteHandler(dbConn))

	mux.HandleFunc("/api/clients", client.Handler(dbConn))
	mux.HandleFunc("/api/clients/update", client.UpdateHandler(dbConn))
	mux.HandleFunc("/api/clients/delete/", client.DeleteHandler(dbConn))
	mux.HandleFunc("/api/clients/import", client.ImportClientsHandler(dbConn))

	mux.HandleFunc("/api/suppliers", supplier.Handler(dbConn))
	mux.HandleFunc("/api/suppliers/update", supplier.UpdateHandler(dbConn))
	mux.HandleFunc("/api/suppliers/delete/", supplier.DeleteHandler(dbConn))

	mux.HandleFunc("/api/tasks", task.Handler(dbConn))
	mux.HandleFunc("/api/tasks/update", task.UpdateHandler(dbConn))
	mux.HandleFunc("/api/tasks/toggle/", task.ToggleHandler(dbConn))
	mux.HandleFunc("/api/tasks/delete/", task.DeleteHandler(dbConn))

	mux.HandleFunc("/api/certifications", certification.Handler(dbConn))
	mux.HandleFunc("/api/certifications/update", certification.UpdateHandler(dbConn))
	mux.HandleFunc("/api/certifications/delete/", certification.DeleteHandler(dbConn))
	mux.HandleFunc("/api/certifications/document/", certification.DocumentHandler(dbConn, svc.Store))

	mux.HandleFunc("/api/consultations", consultation.Handler(dbConn))
	mux.HandleFunc("/api/consultations/update", consultation.UpdateHandler(dbConn))
	mux.HandleFunc("/api/consultations/delete/", consultation.DeleteHandler(dbConn))

	mux.HandleFunc("/api/expenses", finance.ExpensesHandler(dbConn))
	mux.HandleFunc("/api/expenses/update", finance.UpdateExpenseHandler(dbConn))
	mux.HandleFunc("/api/expenses/delete/", finance.DeleteExpenseHandler(dbConn))
	mux.HandleFunc("/api/finance/summary", finance.SummaryHandler(dbConn))

	mux.HandleFunc("/api/dashboard", dashboard.Handler(dbConn))
	mux.HandleFunc("/api/insights", dashboard.InsightsHandler(dbConn))

	mux.HandleFunc("/api/assistant/chat", assistant.ChatHandler(dbConn, svc.Assistant))

	mux.HandleFunc("/api/reports/invoice/", report.InvoiceHandler(dbConn, svc.PDF, svc.Store))
	mux.HandleFunc("/api/reports/stock", report.StockHandler(dbConn, svc.PDF))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			respond.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
