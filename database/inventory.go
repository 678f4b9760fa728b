package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const inventoryColumns = `id, sku, type, carat, quantity, price_per_carat, selling_price,
	certified, origin, supplier_id, description, created_at`

func GetAllInventory(db *sqlx.DB) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	err := db.Select(&items, "SELECT "+inventoryColumns+" FROM inventory ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

// GetInventoryByID returns nil when the item does not exist.
func GetInventoryByID(db *sqlx.DB, id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	found, err := getByID(db, &item, "SELECT "+inventoryColumns+" FROM inventory WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

// GetInventoryBySKU returns nil when no item carries the SKU.
func GetInventoryBySKU(db *sqlx.DB, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	found, err := getByID(db, &item, "SELECT "+inventoryColumns+" FROM inventory WHERE sku = ? COLLATE NOCASE", sku)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item by sku %s: %w", sku, err)
	}
	if !found {
		return nil, nil
	}
	return &item, nil
}

// CreateInventory assigns an id, a SKU when none is given, and the creation time.
func CreateInventory(db *sqlx.DB, item *model.InventoryItem) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("CreateInventory: begin: %w", err)
	}
	defer tx.Rollback()

	if err := CreateInventoryInTx(tx, item); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("CreateInventory: commit: %w", err)
	}
	return nil
}

func CreateInventoryInTx(tx *sqlx.Tx, item *model.InventoryItem) error {
	item.ID = newID()
	item.CreatedAt = timestamp()
	if item.SKU == "" {
		sku, err := NextSequenceInTx(tx, SeqSKU, "GEM-", 6)
		if err != nil {
			return err
		}
		item.SKU = sku
	}
	const q = `INSERT INTO inventory (` + inventoryColumns + `)
		VALUES (:id, :sku, :type, :carat, :quantity, :price_per_carat, :selling_price,
		:certified, :origin, :supplier_id, :description, :created_at)`
	if _, err := tx.NamedExec(q, item); err != nil {
		return fmt.Errorf("CreateInventoryInTx (SKU: %s) failed: %w", item.SKU, err)
	}
	return nil
}

// UpsertInventoryBySKUInTx updates the item with the same SKU or inserts a
// new one. It reports whether a new row was created.
func UpsertInventoryBySKUInTx(tx *sqlx.Tx, item *model.InventoryItem) (bool, error) {
	var existingID string
	err := tx.Get(&existingID, "SELECT id FROM inventory WHERE sku = ? COLLATE NOCASE", item.SKU)
	if err == sql.ErrNoRows || item.SKU == "" {
		if err := CreateInventoryInTx(tx, item); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("UpsertInventoryBySKUInTx lookup (SKU: %s) failed: %w", item.SKU, err)
	}
	item.ID = existingID
	const q = `UPDATE inventory SET type = :type, carat = :carat, quantity = :quantity,
		price_per_carat = :price_per_carat, selling_price = :selling_price,
		certified = :certified, origin = :origin, description = :description
		WHERE id = :id`
	if _, err := tx.NamedExec(q, item); err != nil {
		return false, fmt.Errorf("UpsertInventoryBySKUInTx (SKU: %s) failed: %w", item.SKU, err)
	}
	return false, nil
}

func UpdateInventory(db *sqlx.DB, item model.InventoryItem) error {
	const q = `UPDATE inventory SET sku = :sku, type = :type, carat = :carat, quantity = :quantity,
		price_per_carat = :price_per_carat, selling_price = :selling_price, certified = :certified,
		origin = :origin, supplier_id = :supplier_id, description = :description
		WHERE id = :id`
	res, err := db.NamedExec(q, item)
	if err != nil {
		return fmt.Errorf("UpdateInventory (ID: %s) failed: %w", item.ID, err)
	}
	return checkAffected(res, "inventory", item.ID)
}

func DeleteInventory(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", id, err)
	}
	return checkAffected(res, "inventory", id)
}
