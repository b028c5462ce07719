// Package types provides type definitions for structured data used throughout the placement platform.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Job type constants
const (
	JobTypeInternship = "internship"
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
)

// Location type constants
const (
	LocationRemote = "remote"
	LocationOnSite = "on-site"
	LocationHybrid = "hybrid"
)

// Job posting status constants
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Conversion chance constants: employer-supplied likelihood that an
// internship converts to a full-time offer.
const (
	ConversionLow    = "low"
	ConversionMedium = "medium"
	ConversionHigh   = "high"
	ConversionNone   = "none"
)

// JobOpportunity represents a job or internship posting.
type JobOpportunity struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	CompanyName         string     `json:"company_name"`
	JobType             string     `json:"job_type"`
	Location            string     `json:"location,omitempty"`
	LocationType        string     `json:"location_type,omitempty"`
	Description         string     `json:"description"`
	RequiredSkills      []string   `json:"required_skills"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	MinGPA              *float64   `json:"min_gpa,omitempty"`
	MinExperienceMonths int        `json:"min_experience_months"`
	StipendMin          *int       `json:"stipend_min,omitempty"`
	StipendMax          *int       `json:"stipend_max,omitempty"`
	ConversionChance    string     `json:"conversion_chance,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	DurationMonths      *int       `json:"duration_months,omitempty"`
	Status              string     `json:"status"`
	PostedBy            uuid.UUID  `json:"posted_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CreateJobRequest represents the request to post a new opportunity.
type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,min=1"`
	CompanyName         string     `json:"company_name" validate:"required,min=1"`
	JobType             string     `json:"job_type" validate:"required,oneof=internship full-time part-time contract"`
	Location            string     `json:"location,omitempty"`
	LocationType        string     `json:"location_type,omitempty" validate:"omitempty,oneof=remote on-site hybrid"`
	Description         string     `json:"description" validate:"required,min=1"`
	RequiredSkills      []string   `json:"required_skills,omitempty"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	MinGPA              *float64   `json:"min_gpa,omitempty" validate:"omitempty,gte=0"`
	MinExperienceMonths int        `json:"min_experience_months,omitempty" validate:"gte=0"`
	StipendMin          *int       `json:"stipend_min,omitempty" validate:"omitempty,gte=0"`
	StipendMax          *int       `json:"stipend_max,omitempty" validate:"omitempty,gte=0"`
	ConversionChance    string     `json:"conversion_chance,omitempty" validate:"omitempty,oneof=low medium high none"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	DurationMonths      *int       `json:"duration_months,omitempty" validate:"omitempty,gt=0"`
	Status              string     `json:"status,omitempty" validate:"omitempty,oneof=active closed draft"`
}

// ValidateStipendRange reports whether stipend_min <= stipend_max when both
// are present. The validator tags can't express cross-field pointer checks.
func (r *CreateJobRequest) ValidateStipendRange() bool {
	if r.StipendMin == nil || r.StipendMax == nil {
		return true
	}
	return *r.StipendMin <= *r.StipendMax
}
