package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikhil/placement-hub/internal/types"
)

const jobColumns = `id, title, company_name, job_type, COALESCE(location, ''),
	COALESCE(location_type, ''), description, COALESCE(required_skills, '{}'),
	COALESCE(preferred_skills, '{}'), min_gpa, COALESCE(min_experience_months, 0),
	stipend_min, stipend_max, COALESCE(conversion_chance, ''),
	application_deadline, start_date, duration_months, status, posted_by,
	created_at, updated_at`

func scanJob(row pgx.Row) (*types.JobOpportunity, error) {
	var job types.JobOpportunity
	err := row.Scan(
		&job.ID, &job.Title, &job.CompanyName, &job.JobType, &job.Location,
		&job.LocationType, &job.Description, &job.RequiredSkills,
		&job.PreferredSkills, &job.MinGPA, &job.MinExperienceMonths,
		&job.StipendMin, &job.StipendMax, &job.ConversionChance,
		&job.ApplicationDeadline, &job.StartDate, &job.DurationMonths,
		&job.Status, &job.PostedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListActiveJobs retrieves every active posting, newest first.
func (db *DB) ListActiveJobs(ctx context.Context) ([]types.JobOpportunity, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM job_opportunities
		 WHERE status = 'active' ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.JobOpportunity, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// GetJob retrieves a posting by ID. Returns nil when not found.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*types.JobOpportunity, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_opportunities WHERE id = $1`, jobID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// CreateJob inserts a new posting and returns the stored row.
func (db *DB) CreateJob(ctx context.Context, postedBy uuid.UUID, req *types.CreateJobRequest) (*types.JobOpportunity, error) {
	status := req.Status
	if status == "" {
		status = types.JobStatusActive
	}

	job, err := scanJob(db.pool.QueryRow(ctx,
		`INSERT INTO job_opportunities
		   (title, company_name, job_type, location, location_type, description,
		    required_skills, preferred_skills, min_gpa, min_experience_months,
		    stipend_min, stipend_max, conversion_chance, application_deadline,
		    start_date, duration_months, status, posted_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING `+jobColumns,
		req.Title, req.CompanyName, req.JobType, req.Location, req.LocationType,
		req.Description, req.RequiredSkills, req.PreferredSkills, req.MinGPA,
		req.MinExperienceMonths, req.StipendMin, req.StipendMax,
		req.ConversionChance, req.ApplicationDeadline, req.StartDate,
		req.DurationMonths, status, postedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// UpdateJob replaces the mutable fields of a posting. Only the poster may
// update; zero rows affected means not found or not owned.
func (db *DB) UpdateJob(ctx context.Context, jobID, postedBy uuid.UUID, req *types.CreateJobRequest) (*types.JobOpportunity, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`UPDATE job_opportunities SET
		   title = $1, company_name = $2, job_type = $3, location = $4,
		   location_type = $5, description = $6, required_skills = $7,
		   preferred_skills = $8, min_gpa = $9, min_experience_months = $10,
		   stipend_min = $11, stipend_max = $12, conversion_chance = $13,
		   application_deadline = $14, start_date = $15, duration_months = $16,
		   updated_at = NOW()
		 WHERE id = $17 AND posted_by = $18
		 RETURNING `+jobColumns,
		req.Title, req.CompanyName, req.JobType, req.Location, req.LocationType,
		req.Description, req.RequiredSkills, req.PreferredSkills, req.MinGPA,
		req.MinExperienceMonths, req.StipendMin, req.StipendMax,
		req.ConversionChance, req.ApplicationDeadline, req.StartDate,
		req.DurationMonths, jobID, postedBy,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// CloseJob marks a posting closed. Returns false when the posting does not
// exist or is not owned by postedBy.
func (db *DB) CloseJob(ctx context.Context, jobID, postedBy uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_opportunities SET status = 'closed', updated_at = NOW()
		 WHERE id = $1 AND posted_by = $2 AND status <> 'closed'`,
		jobID, postedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to close job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// CloseExpiredJobs closes every active posting whose application deadline
// has passed. Returns the number of postings closed.
func (db *DB) CloseExpiredJobs(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE job_opportunities SET status = 'closed', updated_at = NOW()
		 WHERE status = 'active'
		   AND application_deadline IS NOT NULL
		   AND application_deadline < NOW()`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired jobs: %w", err)
	}
	return result.RowsAffected(), nil
}
