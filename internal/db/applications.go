package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikhil/placement-hub/internal/types"
)

const applicationColumns = `id, student_id, job_id, COALESCE(cover_letter, ''),
	status, COALESCE(mentor_feedback, ''), COALESCE(recruiter_feedback, ''),
	applied_at, updated_at`

func scanApplication(row pgx.Row) (*types.Application, error) {
	var a types.Application
	err := row.Scan(
		&a.ID, &a.StudentID, &a.JobID, &a.CoverLetter, &a.Status,
		&a.MentorFeedback, &a.RecruiterFeedback, &a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// InsertApplication creates an application row in the "applied" state.
// Returns ErrUniqueViolation on a duplicate (student, job) pair; the
// database constraint, not this code, is what makes Apply idempotent.
func (db *DB) InsertApplication(ctx context.Context, studentID, jobID uuid.UUID, coverLetter string) (*types.Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO applications (student_id, job_id, cover_letter, status)
		 VALUES ($1, $2, $3, 'applied')
		 RETURNING `+applicationColumns,
		studentID, jobID, coverLetter,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert application: %w", mapUniqueViolation(err))
	}
	return app, nil
}

// ListApplicationsByStudent retrieves a student's applications, newest first.
func (db *DB) ListApplicationsByStudent(ctx context.Context, studentID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE student_id = $1 ORDER BY applied_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]types.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// ListApplicationsByJob retrieves every application for one posting, for
// reviewer dashboards.
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications
		 WHERE job_id = $1 ORDER BY applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for job: %w", err)
	}
	defer rows.Close()

	apps := make([]types.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// GetApplication retrieves one application by ID. Returns nil when not found.
func (db *DB) GetApplication(ctx context.Context, appID uuid.UUID) (*types.Application, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, appID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// UpdateApplicationStatus moves an application to a new status and records
// reviewer feedback under the given column ("mentor_feedback" or
// "recruiter_feedback"). Transition legality is the service's job; this only
// persists the result.
func (db *DB) UpdateApplicationStatus(ctx context.Context, appID uuid.UUID, status, feedbackColumn, feedback string) (*types.Application, error) {
	query := `UPDATE applications SET status = $1, updated_at = NOW()`
	args := []any{status, appID}
	if feedback != "" {
		switch feedbackColumn {
		case "mentor_feedback":
			query += `, mentor_feedback = $3`
		case "recruiter_feedback":
			query += `, recruiter_feedback = $3`
		default:
			return nil, fmt.Errorf("unknown feedback column %q", feedbackColumn)
		}
		args = append(args, feedback)
	}
	query += ` WHERE id = $2 RETURNING ` + applicationColumns

	app, err := scanApplication(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}
