package document

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"gemtrade/model"
)

func TestStockReportXLSX(t *testing.T) {
	report := model.StockReport{
		Rows: []model.StockReportRow{
			{Type: "Emerald", Items: 1, Quantity: 10, TotalCarat: 3, Value: 90000},
			{Type: "Ruby", Items: 2, Quantity: 4, TotalCarat: 5.5, Value: 275000, LowStock: 2},
		},
		Items: []model.InventoryItem{
			{SKU: "GEM-000001", Type: "Ruby", Carat: "2.5", Quantity: "3", PricePerCarat: "50,000", Certified: true},
		},
		TotalItems: 3,
		TotalQty:   14,
		TotalValue: 365000,
	}

	data, err := StockReportXLSX(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != summarySheet || sheets[1] != itemsSheet {
		t.Fatalf("expected sheets [Summary Items], got %v", sheets)
	}

	checks := map[string]string{
		"A1": "Type",
		"A2": "Emerald",
		"A3": "Ruby",
		"F3": "2",
		"A4": "Total",
		"E4": "365000",
	}
	for c, want := range checks {
		got, err := f.GetCellValue(summarySheet, c)
		if err != nil {
			t.Fatalf("GetCellValue %s: %v", c, err)
		}
		if got != want {
			t.Errorf("summary %s: expected %q, got %q", c, want, got)
		}
	}

	if got, _ := f.GetCellValue(itemsSheet, "E2"); got != "50000" {
		t.Errorf("expected parsed price 50000, got %q", got)
	}
	if got, _ := f.GetCellValue(itemsSheet, "G2"); got != "Yes" {
		t.Errorf("expected certified Yes, got %q", got)
	}
}
