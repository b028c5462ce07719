package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
)

const projectColumns = `id, student_id, title, COALESCE(description, ''),
	COALESCE(tech_stack, '{}'), COALESCE(github_url, ''), COALESCE(live_url, ''),
	COALESCE(status, ''), start_date, end_date, created_at, updated_at`

// ListProjects retrieves a student's portfolio projects, newest first.
func (db *DB) ListProjects(ctx context.Context, studentID uuid.UUID) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]types.Project, 0)
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Title, &p.Description,
			&p.TechStack, &p.GithubURL, &p.LiveURL, &p.Status,
			&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// CreateProject adds a portfolio project for a student.
func (db *DB) CreateProject(ctx context.Context, studentID uuid.UUID, req *types.CreateProjectRequest) (*types.Project, error) {
	var p types.Project
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects
		   (student_id, title, description, tech_stack, github_url, live_url, status, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+projectColumns,
		studentID, req.Title, req.Description, req.TechStack, req.GithubURL,
		req.LiveURL, req.Status, req.StartDate, req.EndDate,
	).Scan(&p.ID, &p.StudentID, &p.Title, &p.Description, &p.TechStack,
		&p.GithubURL, &p.LiveURL, &p.Status, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

// DeleteProject removes a student's project. Returns false when the project
// does not exist or is not owned by studentID.
func (db *DB) DeleteProject(ctx context.Context, studentID, projectID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND student_id = $2`,
		projectID, studentID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
