package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"gemtrade/aggregation"
	"gemtrade/config"
	"gemtrade/database"
	"gemtrade/document"
	"gemtrade/logger"
	"gemtrade/render"
	"gemtrade/respond"
	"gemtrade/storage"
)

const (
	contentHTML = "text/html; charset=utf-8"
	contentPDF  = "application/pdf"
	contentXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// InvoiceHandler serves /api/reports/invoice/{saleId} as PDF, or as HTML
// with ?format=html or when no PDF renderer is available. Generated PDFs
// are archived when a store is configured.
func InvoiceHandler(db *sqlx.DB, pdf document.PDFRenderer, store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet) {
			return
		}
		saleID, ok := respond.PathID(w, r, "/api/reports/invoice/")
		if !ok {
			return
		}
		cfg := config.GetConfig()
		inv, err := BuildInvoice(db, saleID, InvoiceOptions{
			CompanyName:    cfg.CompanyName,
			TaxRatePercent: cfg.TaxRatePercent,
		}, time.Now())
		if err != nil {
			respond.StoreError(w, "invoice", err)
			return
		}
		if inv == nil {
			respond.Error(w, "sale not found", http.StatusNotFound)
			return
		}

		html, err := render.Invoice(*inv)
		if err != nil {
			logger.Error("invoice render failed", "sale", saleID, "error", err)
			respond.Error(w, "failed to render invoice", http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("format") == "html" || pdf == nil {
			w.Header().Set("Content-Type", contentHTML)
			w.Write([]byte(html))
			return
		}

		data, err := pdf.RenderPDF(r.Context(), html)
		if err != nil {
			logger.Error("invoice pdf failed", "sale", saleID, "error", err)
			respond.Error(w, "failed to generate PDF", http.StatusInternalServerError)
			return
		}
		if store != nil {
			if err := store.Put(r.Context(), storage.InvoiceKey(saleID), data, contentPDF); err != nil {
				logger.Warn("invoice archive failed", "sale", saleID, "error", err)
			}
		}
		w.Header().Set("Content-Type", contentPDF)
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", inv.Number+".pdf"))
		w.Write(data)
	}
}

// StockHandler serves the stock report as ?format=pdf (default), xlsx or html.
func StockHandler(db *sqlx.DB, pdf document.PDFRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodGet) {
			return
		}
		format := r.URL.Query().Get("format")
		if format == "" {
			format = "pdf"
		}
		if format != "pdf" && format != "xlsx" && format != "html" {
			respond.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
			return
		}

		items, err := database.GetAllInventory(db)
		if err != nil {
			respond.StoreError(w, "stock report", err)
			return
		}
		now := time.Now()
		report := aggregation.BuildStockReport(items, now)
		report.CompanyName = config.GetConfig().CompanyName
		filename := "stock-" + now.Format("20060102")

		if format == "xlsx" {
			data, err := document.StockReportXLSX(report)
			if err != nil {
				logger.Error("stock xlsx failed", "error", err)
				respond.Error(w, "failed to generate workbook", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", contentXLSX)
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
			w.Write(data)
			return
		}

		html, err := render.StockReport(report)
		if err != nil {
			logger.Error("stock report render failed", "error", err)
			respond.Error(w, "failed to render stock report", http.StatusInternalServerError)
			return
		}
		if format == "html" {
			w.Header().Set("Content-Type", contentHTML)
			w.Write([]byte(html))
			return
		}
		if pdf == nil {
			respond.Error(w, "PDF rendering is not available, use format=html or format=xlsx", http.StatusServiceUnavailable)
			return
		}
		data, err := pdf.RenderPDF(r.Context(), html)
		if err != nil {
			logger.Error("stock report pdf failed", "error", err)
			respond.Error(w, "failed to generate PDF", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentPDF)
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", filename))
		w.Write(data)
	}
}
