package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const consultationColumns = `id, client_id, consultation_date, consultation_type, fee, status, notes, created_at`

func GetAllConsultations(db *sqlx.DB) ([]model.Consultation, error) {
	list := []model.Consultation{}
	err := db.Select(&list, "SELECT "+consultationColumns+" FROM consultations ORDER BY consultation_date DESC, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get consultations: %w", err)
	}
	return list, nil
}

func CreateConsultation(db *sqlx.DB, c *model.Consultation) error {
	c.ID = newID()
	c.CreatedAt = timestamp()
	if c.Status == "" {
		c.Status = "Scheduled"
	}
	const q = `INSERT INTO consultations (` + consultationColumns + `)
		VALUES (:id, :client_id, :consultation_date, :consultation_type, :fee, :status, :notes, :created_at)`
	if _, err := db.NamedExec(q, c); err != nil {
		return fmt.Errorf("CreateConsultation failed: %w", err)
	}
	return nil
}

func UpdateConsultation(db *sqlx.DB, c model.Consultation) error {
	const q = `UPDATE consultations SET client_id = :client_id, consultation_date = :consultation_date,
		consultation_type = :consultation_type, fee = :fee, status = :status, notes = :notes
		WHERE id = :id`
	res, err := db.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("UpdateConsultation (ID: %s) failed: %w", c.ID, err)
	}
	return checkAffected(res, "consultation", c.ID)
}

func DeleteConsultation(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM consultations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete consultation %s: %w", id, err)
	}
	return checkAffected(res, "consultation", id)
}
