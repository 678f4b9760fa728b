package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const supplierColumns = `id, name, country, contact_person, phone, email, specialty, created_at`

func GetAllSuppliers(db *sqlx.DB) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	err := db.Select(&suppliers, "SELECT "+supplierColumns+" FROM suppliers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

func CreateSupplier(db *sqlx.DB, s *model.Supplier) error {
	s.ID = newID()
	s.CreatedAt = timestamp()
	const q = `INSERT INTO suppliers (` + supplierColumns + `)
		VALUES (:id, :name, :country, :contact_person, :phone, :email, :specialty, :created_at)`
	if _, err := db.NamedExec(q, s); err != nil {
		return fmt.Errorf("CreateSupplier failed: %w", err)
	}
	return nil
}

func UpdateSupplier(db *sqlx.DB, s model.Supplier) error {
	const q = `UPDATE suppliers SET name = :name, country = :country, contact_person = :contact_person,
		phone = :phone, email = :email, specialty = :specialty WHERE id = :id`
	res, err := db.NamedExec(q, s)
	if err != nil {
		return fmt.Errorf("UpdateSupplier (ID: %s) failed: %w", s.ID, err)
	}
	return checkAffected(res, "supplier", s.ID)
}

func DeleteSupplier(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier with id %s: %w", id, err)
	}
	return checkAffected(res, "supplier", id)
}
