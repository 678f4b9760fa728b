package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/logger"
)

// Sequence names.
const (
	SeqInvoice = "INVOICE"
	SeqSKU     = "SKU"
)

// NextSequenceInTx increments the named counter and formats it with prefix
// and zero padding, e.g. INV-00042. A missing counter starts at 1.
func NextSequenceInTx(tx *sqlx.Tx, name, prefix string, padding int) (string, error) {
	var lastNo int
	err := tx.Get(&lastNo, "SELECT last_no FROM code_sequences WHERE name = ?", name)
	if err != nil {
		if err != sql.ErrNoRows {
			return "", fmt.Errorf("failed to get sequence '%s': %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO code_sequences (name, last_no) VALUES (?, 0)`, name); err != nil {
			return "", fmt.Errorf("failed to create sequence '%s': %w", name, err)
		}
		lastNo = 0
	}

	newNo := lastNo + 1
	_, err = tx.Exec(`UPDATE code_sequences SET last_no = ? WHERE name = ?`, newNo, name)
	if err != nil {
		return "", fmt.Errorf("failed to update sequence '%s': %w", name, err)
	}

	format := fmt.Sprintf("%s%%0%dd", prefix, padding)
	newCode := fmt.Sprintf(format, newNo)
	logger.Debug("sequence advanced", "name", name, "code", newCode)
	return newCode, nil
}
