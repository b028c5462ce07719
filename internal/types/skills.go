package types

import (
	"time"

	"github.com/google/uuid"
)

// Skill category constants
const (
	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
)

// Proficiency level constants
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// Skill is a catalog entry. Global, append-only reference data.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StudentSkill joins a student profile to a catalog skill, with the
// catalog name/category denormalized for display.
type StudentSkill struct {
	ID               uuid.UUID `json:"id"`
	StudentID        uuid.UUID `json:"student_id"`
	SkillID          uuid.UUID `json:"skill_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category,omitempty"`
	ProficiencyLevel string    `json:"proficiency_level,omitempty"`
	Verified         bool      `json:"verified"`
	CreatedAt        time.Time `json:"created_at"`
}

// AddSkillRequest attaches a catalog skill to the caller's profile.
type AddSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id" validate:"required"`
	ProficiencyLevel string    `json:"proficiency_level" validate:"required,oneof=beginner intermediate advanced expert"`
}

// Project is a student portfolio project.
type Project struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   uuid.UUID  `json:"student_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TechStack   []string   `json:"tech_stack,omitempty"`
	GithubURL   string     `json:"github_url,omitempty"`
	LiveURL     string     `json:"live_url,omitempty"`
	Status      string     `json:"status,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateProjectRequest adds a portfolio project.
type CreateProjectRequest struct {
	Title       string     `json:"title" validate:"required,min=1"`
	Description string     `json:"description,omitempty"`
	TechStack   []string   `json:"tech_stack,omitempty"`
	GithubURL   string     `json:"github_url,omitempty" validate:"omitempty,url"`
	LiveURL     string     `json:"live_url,omitempty" validate:"omitempty,url"`
	Status      string     `json:"status,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Certification is an externally issued credential on a student profile.
type Certification struct {
	ID                  uuid.UUID  `json:"id"`
	StudentID           uuid.UUID  `json:"student_id"`
	Title               string     `json:"title"`
	IssuingOrganization string     `json:"issuing_organization"`
	CredentialID        string     `json:"credential_id,omitempty"`
	CredentialURL       string     `json:"credential_url,omitempty"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	Verified            bool       `json:"verified"`
	CreatedAt           time.Time  `json:"created_at"`
}

// CreateCertificationRequest adds a certification.
type CreateCertificationRequest struct {
	Title               string     `json:"title" validate:"required,min=1"`
	IssuingOrganization string     `json:"issuing_organization" validate:"required,min=1"`
	CredentialID        string     `json:"credential_id,omitempty"`
	CredentialURL       string     `json:"credential_url,omitempty" validate:"omitempty,url"`
	IssueDate           *time.Time `json:"issue_date,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
}

// Achievement is a badge awarded to a student (hackathons, placement
// milestones, course completions). Awarded by the platform, read-only here.
type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   uuid.UUID  `json:"student_id"`
	Title       string     `json:"title"`
	BadgeType   string     `json:"badge_type"`
	Description string     `json:"description,omitempty"`
	Points      int        `json:"points"`
	IssuedDate  *time.Time `json:"issued_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
