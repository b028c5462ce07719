package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikhil/placement-hub/internal/types"
)

const profileColumns = `id, user_id, role, full_name, email,
	COALESCE(department, ''), year_of_study, gpa, COALESCE(phone, ''),
	COALESCE(linkedin_url, ''), COALESCE(github_url, ''),
	COALESCE(avatar_url, ''), COALESCE(bio, ''), created_at, updated_at`

func scanProfile(row pgx.Row) (*types.Profile, error) {
	var p types.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Role, &p.FullName, &p.Email, &p.Department,
		&p.YearOfStudy, &p.GPA, &p.Phone, &p.LinkedinURL, &p.GithubURL,
		&p.AvatarURL, &p.Bio, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile retrieves a profile by the owning user ID. Returns nil when
// no profile exists.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// CreateProfile inserts the profile row for a freshly registered user.
func (db *DB) CreateProfile(ctx context.Context, userID uuid.UUID, role, fullName, email string) (*types.Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, role, full_name, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+profileColumns,
		userID, role, fullName, email,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", mapUniqueViolation(err))
	}
	return p, nil
}

// UpdateProfile applies a profile edit. Empty strings and nil pointers keep
// the stored values, matching partial updates from the profile form.
func (db *DB) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`UPDATE profiles SET
		   full_name     = COALESCE(NULLIF($1, ''), full_name),
		   department    = COALESCE(NULLIF($2, ''), department),
		   year_of_study = COALESCE($3, year_of_study),
		   gpa           = COALESCE($4, gpa),
		   phone         = COALESCE(NULLIF($5, ''), phone),
		   linkedin_url  = COALESCE(NULLIF($6, ''), linkedin_url),
		   github_url    = COALESCE(NULLIF($7, ''), github_url),
		   avatar_url    = COALESCE(NULLIF($8, ''), avatar_url),
		   bio           = COALESCE(NULLIF($9, ''), bio),
		   updated_at    = NOW()
		 WHERE user_id = $10
		 RETURNING `+profileColumns,
		req.FullName, req.Department, req.YearOfStudy, req.GPA, req.Phone,
		req.LinkedinURL, req.GithubURL, req.AvatarURL, req.Bio, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}
