package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gemtrade/logger"
	"gemtrade/model"
)

// ParseClientCSV reads a client list. Only the name column is required.
// Unknown client types are kept as entered.
func ParseClientCSV(r io.Reader) ([]model.Client, []string, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"name"})
	if err != nil {
		return nil, nil, err
	}

	var clients []model.Client
	var skipped []string
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("client CSV row unreadable, skipping", "line", line, "error", err)
			skipped = append(skipped, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		name := get("name")
		if name == "" {
			skipped = append(skipped, fmt.Sprintf("line %d: name is empty", line))
			continue
		}

		clients = append(clients, model.Client{
			Name:       name,
			ClientType: get("client_type"),
			City:       get("city"),
			Phone:      get("phone"),
			Email:      get("email"),
			Address:    get("address"),
		})
	}

	return clients, skipped, nil
}
