package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gemtrade/model"
)

const certificationColumns = `id, stone_id, certificate_number, lab, issue_date, grade, document_key, created_at`

func GetAllCertifications(db *sqlx.DB) ([]model.Certification, error) {
	certs := []model.Certification{}
	err := db.Select(&certs, "SELECT "+certificationColumns+" FROM certifications ORDER BY issue_date DESC, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get certifications: %w", err)
	}
	return certs, nil
}

func GetCertificationsByStone(db *sqlx.DB, stoneID string) ([]model.Certification, error) {
	certs := []model.Certification{}
	err := db.Select(&certs, "SELECT "+certificationColumns+" FROM certifications WHERE stone_id = ? ORDER BY issue_date", stoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get certifications for stone %s: %w", stoneID, err)
	}
	return certs, nil
}

// GetCertificationByID returns nil when the certification does not exist.
func GetCertificationByID(db *sqlx.DB, id string) (*model.Certification, error) {
	var c model.Certification
	found, err := getByID(db, &c, "SELECT "+certificationColumns+" FROM certifications WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get certification %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// CreateCertification stores the certificate and marks the stone certified.
func CreateCertification(db *sqlx.DB, c *model.Certification) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("CreateCertification: begin: %w", err)
	}
	defer tx.Rollback()

	c.ID = newID()
	c.CreatedAt = timestamp()
	const q = `INSERT INTO certifications (` + certificationColumns + `)
		VALUES (:id, :stone_id, :certificate_number, :lab, :issue_date, :grade, :document_key, :created_at)`
	if _, err := tx.NamedExec(q, c); err != nil {
		return fmt.Errorf("CreateCertification (No: %s) failed: %w", c.CertificateNumber, err)
	}
	if _, err := tx.Exec(`UPDATE inventory SET certified = 1 WHERE id = ?`, c.StoneID); err != nil {
		return fmt.Errorf("CreateCertification: mark stone %s certified: %w", c.StoneID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("CreateCertification: commit: %w", err)
	}
	return nil
}

func UpdateCertification(db *sqlx.DB, c model.Certification) error {
	const q = `UPDATE certifications SET stone_id = :stone_id, certificate_number = :certificate_number,
		lab = :lab, issue_date = :issue_date, grade = :grade WHERE id = :id`
	res, err := db.NamedExec(q, c)
	if err != nil {
		return fmt.Errorf("UpdateCertification (ID: %s) failed: %w", c.ID, err)
	}
	return checkAffected(res, "certification", c.ID)
}

// SetCertificationDocument records the storage key of an uploaded scan.
func SetCertificationDocument(db *sqlx.DB, id, key string) error {
	res, err := db.Exec(`UPDATE certifications SET document_key = ? WHERE id = ?`, key, id)
	if err != nil {
		return fmt.Errorf("SetCertificationDocument (ID: %s) failed: %w", id, err)
	}
	return checkAffected(res, "certification", id)
}

func DeleteCertification(db *sqlx.DB, id string) error {
	res, err := db.Exec(`DELETE FROM certifications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certification %s: %w", id, err)
	}
	return checkAffected(res, "certification", id)
}
