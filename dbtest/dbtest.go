// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"gemtrade/loader"
)

// Open returns an in-memory database with the schema applied. A single
// connection is used so every query sees the same memory database.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := loader.InitDatabase(db); err != nil {
		db.Close()
		t.Fatalf("init schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
