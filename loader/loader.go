package loader

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"gemtrade/database"
	"gemtrade/logger"
	"gemtrade/parsers"
)

//go:embed schema.sql
var schemaSQL string

// InitDatabase applies the schema. It is safe to run on every start.
func InitDatabase(db *sqlx.DB) error {
	logger.Info("applying database schema")
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	logger.Info("schema applied")
	return nil
}

// ErrInvalidUpload marks import failures caused by the uploaded file.
var ErrInvalidUpload = errors.New("invalid upload")

// ImportResult summarises a CSV import.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped []string `json:"skipped"`
}

// Decode wraps r with a decoder for the named text encoding (WHATWG names
// such as "windows-1252" or "shift_jis"). Empty and UTF-8 names return r.
func Decode(r io.Reader, encodingName string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name == "" || name == "utf-8" || name == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported encoding %q: %w", ErrInvalidUpload, encodingName, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ImportInventoryCSV upserts inventory rows by SKU in a single transaction.
func ImportInventoryCSV(db *sqlx.DB, r io.Reader, encodingName string) (result ImportResult, err error) {
	result.Skipped = []string{}
	decoded, err := Decode(r, encodingName)
	if err != nil {
		return result, err
	}
	parsed, err := parsers.ParseInventoryCSV(decoded)
	if err != nil {
		return result, fmt.Errorf("%w: failed to parse inventory CSV: %w", ErrInvalidUpload, err)
	}
	result.Skipped = append(result.Skipped, parsed.Skipped...)

	tx, err := db.Beginx()
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			logger.Warn("rolling back inventory import", "error", err)
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for i := range parsed.Items {
		created, upsertErr := database.UpsertInventoryBySKUInTx(tx, &parsed.Items[i])
		if upsertErr != nil {
			return result, upsertErr
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	logger.Info("inventory CSV imported", "created", result.Created, "updated", result.Updated, "skipped", len(result.Skipped))
	return result, nil
}

// ImportClientsCSV upserts clients by name in a single transaction.
func ImportClientsCSV(db *sqlx.DB, r io.Reader, encodingName string) (result ImportResult, err error) {
	result.Skipped = []string{}
	decoded, err := Decode(r, encodingName)
	if err != nil {
		return result, err
	}
	clients, skipped, err := parsers.ParseClientCSV(decoded)
	if err != nil {
		return result, fmt.Errorf("%w: failed to parse client CSV: %w", ErrInvalidUpload, err)
	}
	result.Skipped = append(result.Skipped, skipped...)

	tx, err := db.Beginx()
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			logger.Warn("rolling back client import", "error", err)
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for i := range clients {
		created, upsertErr := database.UpsertClientByNameInTx(tx, &clients[i])
		if upsertErr != nil {
			return result, upsertErr
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	logger.Info("client CSV imported", "created", result.Created, "updated", result.Updated, "skipped", len(result.Skipped))
	return result, nil
}
