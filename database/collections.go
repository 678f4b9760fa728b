package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/aggregation"
)

// LoadCollections reads every collection the dashboard aggregates.
func LoadCollections(db *sqlx.DB) (aggregation.Input, error) {
	var in aggregation.Input
	var err error

	if in.Inventory, err = GetAllInventory(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Sales, err = GetAllSales(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Clients, err = GetAllClients(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Suppliers, err = GetAllSuppliers(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Tasks, err = GetAllTasks(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Expenses, err = GetAllExpenses(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	if in.Consultations, err = GetAllConsultations(db); err != nil {
		return in, fmt.Errorf("load collections: %w", err)
	}
	return in, nil
}
