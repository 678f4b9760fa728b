package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const saleColumns = `id, stone_id, client_id, carat, total_amount, sale_date, status,
	payment_method, notes, created_at`

// UnknownName is shown for references to records that no longer exist.
const UnknownName = "Unknown"

func GetAllSales(db *sqlx.DB) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := db.Select(&sales, "SELECT "+saleColumns+" FROM sales ORDER BY sale_date DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	return sales, nil
}

// GetSaleViews returns every sale with client and stone names resolved.
// Dangling references resolve to UnknownName.
func GetSaleViews(db *sqlx.DB) ([]model.SaleView, error) {
	const q = `
		SELECT s.id, s.stone_id, s.client_id, s.carat, s.total_amount, s.sale_date, s.status,
		       s.payment_method, s.notes, s.created_at,
		       COALESCE(c.name, ?) AS client_name,
		       COALESCE(i.type, ?) AS stone_type,
		       COALESCE(i.sku, '') AS stone_sku
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		LEFT JOIN inventory i ON i.id = s.stone_id
		ORDER BY s.sale_date DESC, s.created_at DESC`

	rows, err := db.Queryx(q, UnknownName, UnknownName)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale views: %w", err)
	}
	defer rows.Close()

	views := []model.SaleView{}
	for rows.Next() {
		var v model.SaleView
		if err := rows.Scan(&v.ID, &v.StoneID, &v.ClientID, &v.Carat, &v.TotalAmount, &v.SaleDate,
			&v.Status, &v.PaymentMethod, &v.Notes, &v.CreatedAt,
			&v.ClientName, &v.StoneType, &v.StoneSKU); err != nil {
			return nil, fmt.Errorf("failed to scan sale view: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// GetSaleByID returns nil when the sale does not exist.
func GetSaleByID(db *sqlx.DB, id string) (*model.Sale, error) {
	var s model.Sale
	found, err := getByID(db, &s, "SELECT "+saleColumns+" FROM sales WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

func CreateSale(db *sqlx.DB, s *model.Sale) error {
	s.ID = newID()
	s.CreatedAt = timestamp()
	if s.Status == "" {
		s.Status = model.SaleCompleted
	}
	const q = `INSERT INTO sales (` + saleColumns + `)
		VALUES (:id, :stone_id, :client_id, :carat, :total_amount, :sale_date, :status,
		:payment_method, :notes, :created_at)`
	if _, err := db.NamedExec(q, s); err != nil {
		return fmt.Errorf("CreateSale failed: %w", err)
	}
	return nil
}

func UpdateSale(db *sqlx.DB, s model.Sale) error {
	const q = `UPDATE sales SET stone_id = :stone_id, client_id = :client_id, carat = :carat,
		total_amount = :total_amount, sale_date = :sale_date, status = :status,
		payment_method = :payment_method, notes = :notes
		WHERE id = :id`
	res, err := db.NamedExec(q, s)
	if err != nil {
		return fmt.Errorf("UpdateSale (ID: %s) failed: %w", s.ID, err)
	}
	return checkAffected(res, "sale", s.ID)
}

func DeleteSale(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale %s: %w", id, err)
	}
	return checkAffected(res, "sale", id)
}

// GetInvoiceNumber returns the invoice number issued for a sale, issuing the
// next one on first use.
func GetInvoiceNumber(db *sqlx.DB, saleID string) (string, error) {
	tx, err := db.Beginx()
	if err != nil {
		return "", fmt.Errorf("GetInvoiceNumber: begin: %w", err)
	}
	defer tx.Rollback()

	var number string
	err = tx.Get(&number, "SELECT invoice_number FROM invoices WHERE sale_id = ?", saleID)
	if err == nil {
		return number, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("GetInvoiceNumber lookup (Sale: %s) failed: %w", saleID, err)
	}

	number, err = NextSequenceInTx(tx, SeqInvoice, "INV-", 5)
	if err != nil {
		return "", err
	}
	if _, err := tx.Exec(`INSERT INTO invoices (sale_id, invoice_number, issued_at) VALUES (?, ?, ?)`,
		saleID, number, timestamp()); err != nil {
		return "", fmt.Errorf("GetInvoiceNumber (Sale: %s) failed: %w", saleID, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("GetInvoiceNumber: commit: %w", err)
	}
	return number, nil
}
