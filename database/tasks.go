package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const taskColumns = `id, title, description, due_date, completed, priority, created_at`

// GetAllTasks lists open tasks before completed ones, earliest due first.
func GetAllTasks(db *sqlx.DB) ([]model.Task, error) {
	tasks := []model.Task{}
	err := db.Select(&tasks, "SELECT "+taskColumns+` FROM tasks
		ORDER BY completed, due_date IS NULL, due_date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

func CreateTask(db *sqlx.DB, t *model.Task) error {
	t.ID = newID()
	t.CreatedAt = timestamp()
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	const q = `INSERT INTO tasks (` + taskColumns + `)
		VALUES (:id, :title, :description, :due_date, :completed, :priority, :created_at)`
	if _, err := db.NamedExec(q, t); err != nil {
		return fmt.Errorf("CreateTask failed: %w", err)
	}
	return nil
}

func UpdateTask(db *sqlx.DB, t model.Task) error {
	const q = `UPDATE tasks SET title = :title, description = :description, due_date = :due_date,
		completed = :completed, priority = :priority WHERE id = :id`
	res, err := db.NamedExec(q, t)
	if err != nil {
		return fmt.Errorf("UpdateTask (ID: %s) failed: %w", t.ID, err)
	}
	return checkAffected(res, "task", t.ID)
}

// ToggleTask flips the completed flag.
func ToggleTask(db *sqlx.DB, id string) error {
	res, err := db.Exec(`UPDATE tasks SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to toggle task %s: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

func DeleteTask(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return checkAffected(res, "task", id)
}
