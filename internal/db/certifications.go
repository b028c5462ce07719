package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
)

const certificationColumns = `id, student_id, title, issuing_organization,
	COALESCE(credential_id, ''), COALESCE(credential_url, ''), issue_date,
	expiry_date, COALESCE(verified, false), created_at`

// ListCertifications retrieves a student's certifications, newest first.
func (db *DB) ListCertifications(ctx context.Context, studentID uuid.UUID) ([]types.Certification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications
		 WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	certs := make([]types.Certification, 0)
	for rows.Next() {
		var c types.Certification
		if err := rows.Scan(&c.ID, &c.StudentID, &c.Title, &c.IssuingOrganization,
			&c.CredentialID, &c.CredentialURL, &c.IssueDate, &c.ExpiryDate,
			&c.Verified, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	return certs, nil
}

// CreateCertification adds a certification for a student.
func (db *DB) CreateCertification(ctx context.Context, studentID uuid.UUID, req *types.CreateCertificationRequest) (*types.Certification, error) {
	var c types.Certification
	err := db.pool.QueryRow(ctx,
		`INSERT INTO certifications
		   (student_id, title, issuing_organization, credential_id, credential_url, issue_date, expiry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+certificationColumns,
		studentID, req.Title, req.IssuingOrganization, req.CredentialID,
		req.CredentialURL, req.IssueDate, req.ExpiryDate,
	).Scan(&c.ID, &c.StudentID, &c.Title, &c.IssuingOrganization,
		&c.CredentialID, &c.CredentialURL, &c.IssueDate, &c.ExpiryDate,
		&c.Verified, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}
	return &c, nil
}

// DeleteCertification removes a student's certification. Returns false when
// it does not exist or is not owned by studentID.
func (db *DB) DeleteCertification(ctx context.Context, studentID, certID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM certifications WHERE id = $1 AND student_id = $2`,
		certID, studentID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete certification: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListAchievements retrieves a student's awarded badges, newest first.
// Achievements are platform-issued; there is no write path here.
func (db *DB) ListAchievements(ctx context.Context, studentID uuid.UUID) ([]types.Achievement, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, student_id, title, badge_type, COALESCE(description, ''),
		        COALESCE(points, 0), issued_date, created_at
		 FROM achievements
		 WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := make([]types.Achievement, 0)
	for rows.Next() {
		var a types.Achievement
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Title, &a.BadgeType,
			&a.Description, &a.Points, &a.IssuedDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}
