package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gemtrade/model"
	"gemtrade/money"
)

const (
	summarySheet = "Summary"
	itemsSheet   = "Items"
)

// StockReportXLSX writes the stock report as a workbook with a per-type
// summary sheet and an item sheet.
func StockReportXLSX(report model.StockReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	summaryHeaders := []string{"Type", "Items", "Quantity", "Carat", "Value", "Low stock"}
	if err := writeHeader(f, summarySheet, summaryHeaders, headerStyle); err != nil {
		return nil, err
	}
	row := 2
	for _, r := range report.Rows {
		values := []interface{}{r.Type, r.Items, r.Quantity, r.TotalCarat, r.Value, r.LowStock}
		if err := f.SetSheetRow(summarySheet, cell(0, row), &values); err != nil {
			return nil, fmt.Errorf("summary row %d: %w", row, err)
		}
		row++
	}
	totals := []interface{}{"Total", report.TotalItems, report.TotalQty, nil, report.TotalValue, nil}
	if err := f.SetSheetRow(summarySheet, cell(0, row), &totals); err != nil {
		return nil, fmt.Errorf("totals row: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, cell(0, row), cell(len(summaryHeaders)-1, row), totalStyle); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("items sheet: %w", err)
	}
	itemHeaders := []string{"SKU", "Type", "Carat", "Quantity", "Price per carat", "Selling price", "Certified", "Origin"}
	if err := writeHeader(f, itemsSheet, itemHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, it := range report.Items {
		values := []interface{}{
			it.SKU, it.Type,
			money.Parse(it.Carat), money.Parse(it.Quantity),
			money.Parse(it.PricePerCarat), money.Parse(it.SellingPrice),
			yesNo(it.Certified), it.Origin,
		}
		if err := f.SetSheetRow(itemsSheet, cell(0, i+2), &values); err != nil {
			return nil, fmt.Errorf("item row %d: %w", i+2, err)
		}
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		if err := f.SetCellValue(sheet, cell(i, 1), h); err != nil {
			return err
		}
	}
	last := cell(len(headers)-1, 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", lastCol, 15)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
