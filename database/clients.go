package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const clientColumns = `id, name, client_type, city, phone, email, address, created_at`

func GetAllClients(db *sqlx.DB) ([]model.Client, error) {
	clients := []model.Client{}
	err := db.Select(&clients, "SELECT "+clientColumns+" FROM clients ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

// GetClientByID returns nil when the client does not exist.
func GetClientByID(db *sqlx.DB, id string) (*model.Client, error) {
	var c model.Client
	found, err := getByID(db, &c, "SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func CreateClient(db *sqlx.DB, c *model.Client) error {
	c.ID = newID()
	c.CreatedAt = timestamp()
	const q = `INSERT INTO clients (` + clientColumns + `)
		VALUES (:id, :name, :client_type, :city, :phone, :email, :address, :created_at)`
	if _, err := db.NamedExec(q, c); err != nil {
		return fmt.Errorf("CreateClient (Name: %s) failed: %w", c.Name, err)
	}
	return nil
}

// UpsertClientByNameInTx updates the client with the same name or inserts a
// new one. It reports whether a new row was created.
func UpsertClientByNameInTx(tx *sqlx.Tx, c *model.Client) (bool, error) {
	var existingID string
	err := tx.Get(&existingID, "SELECT id FROM clients WHERE name = ? COLLATE NOCASE LIMIT 1", c.Name)
	if err != nil {
		if err != sql.ErrNoRows {
			return false, fmt.Errorf("UpsertClientByNameInTx lookup (Name: %s) failed: %w", c.Name, err)
		}
		c.ID = newID()
		c.CreatedAt = timestamp()
		const q = `INSERT INTO clients (` + clientColumns + `)
			VALUES (:id, :name, :client_type, :city, :phone, :email, :address, :created_at)`
		if _, err := tx.NamedExec(q, c); err != nil {
			return false, fmt.Errorf("UpsertClientByNameInTx (Name: %s) failed: %w", c.Name, err)
		}
		return true, nil
	}

	c.ID = existingID
	const q = `UPDATE clients SET client_type = :client_type, city = :city, phone = :phone,
		email = :email, address = :address WHERE id = :id`
	if _, err := tx.NamedExec(q, c); err != nil {
		return false, fmt.Errorf("UpsertClientByNameInTx (Name: %s) failed: %w", c.Name, err)
	}
	return false, nil
}

func UpdateClient(db *sqlx.DB, c model.Client) error {
	const q = `UPDATE clients SET name = :name, client_type = :client_type, city = :city,
		phone = :phone, email = :email, address = :address WHERE id = :id`
	res, err := db.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("UpdateClient (ID: %s) failed: %w", c.ID, err)
	}
	return checkAffected(res, "client", c.ID)
}

func DeleteClient(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client with id %s: %w", id, err)
	}
	return checkAffected(res, "client", id)
}
