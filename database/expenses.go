package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const expenseColumns = `id, category, amount, expense_date, description, created_at`

func GetAllExpenses(db *sqlx.DB) ([]model.Expense, error) {
	list := []model.Expense{}
	err := db.Select(&list, "SELECT "+expenseColumns+" FROM expenses ORDER BY expense_date DESC, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return list, nil
}

func CreateExpense(db *sqlx.DB, e *model.Expense) error {
	e.ID = newID()
	e.CreatedAt = timestamp()
	const q = `INSERT INTO expenses (` + expenseColumns + `)
		VALUES (:id, :category, :amount, :expense_date, :description, :created_at)`
	if _, err := db.NamedExec(q, e); err != nil {
		return fmt.Errorf("CreateExpense failed: %w", err)
	}
	return nil
}

func UpdateExpense(db *sqlx.DB, e model.Expense) error {
	const q = `UPDATE expenses SET category = :category, amount = :amount,
		expense_date = :expense_date, description = :description WHERE id = :id`
	res, err := db.NamedExec(q, e)
	if err != nil {
		return fmt.Errorf("UpdateExpense (ID: %s) failed: %w", e.ID, err)
	}
	return checkAffected(res, "expense", e.ID)
}

func DeleteExpense(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}
	return checkAffected(res, "expense", id)
}
