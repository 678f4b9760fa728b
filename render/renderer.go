// Package render produces the printable HTML documents: invoices and the
// stock report. The same HTML is served directly or converted to PDF.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"gemtrade/model"
	"gemtrade/money"
)

var funcs = template.FuncMap{
	"money": money.Format,
	"qty":   money.Quantity,
	"num":   money.Parse,
	"inc":   func(i int) int { return i + 1 },
}

var (
	invoiceTemplate = template.Must(template.New("invoice").Funcs(funcs).Parse(baseStyle + invoiceHTML))
	stockTemplate   = template.Must(template.New("stock").Funcs(funcs).Parse(baseStyle + stockHTML))
)

// Invoice renders the invoice document for one sale.
func Invoice(inv model.Invoice) (string, error) {
	return execute(invoiceTemplate, inv)
}

// StockReport renders the stock valuation report.
func StockReport(report model.StockReport) (string, error) {
	return execute(stockTemplate, report)
}

func execute(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
