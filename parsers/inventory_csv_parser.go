package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gemtrade/logger"
	"gemtrade/model"
)

// ParsedInventoryCSV is the result of reading an inventory spreadsheet.
type ParsedInventoryCSV struct {
	Items   []model.InventoryItem
	Skipped []string
}

// ParseInventoryCSV reads an inventory export. The header row must contain
// type and quantity; sku, carat, price_per_carat, selling_price, certified,
// origin and description are optional. Rows without a type are skipped.
func ParseInventoryCSV(r io.Reader) (ParsedInventoryCSV, error) {
	var out ParsedInventoryCSV
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return out, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return out, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"type", "quantity"})
	if err != nil {
		return out, err
	}

	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("inventory CSV row unreadable, skipping", "line", line, "error", err)
			out.Skipped = append(out.Skipped, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		item := model.InventoryItem{
			SKU:           get("sku"),
			Type:          get("type"),
			Carat:         get("carat"),
			Quantity:      get("quantity"),
			PricePerCarat: get("price_per_carat"),
			SellingPrice:  get("selling_price"),
			Certified:     parseBool(get("certified")),
			Origin:        get("origin"),
			Description:   get("description"),
		}
		if item.Type == "" {
			out.Skipped = append(out.Skipped, fmt.Sprintf("line %d: type is empty", line))
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
