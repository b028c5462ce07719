package types

import (
	"time"

	"github.com/google/uuid"
)

// Role constants for platform users.
const (
	RoleStudent   = "student"
	RoleMentor    = "mentor"
	RoleTNP       = "tnp"
	RoleRecruiter = "recruiter"
)

// CanPostJobs reports whether a role may create and manage job postings.
func CanPostJobs(role string) bool {
	return role == RoleTNP || role == RoleRecruiter
}

// CanReviewApplications reports whether a role may move applications
// through the review pipeline.
func CanReviewApplications(role string) bool {
	return role == RoleMentor || role == RoleTNP || role == RoleRecruiter
}

// Profile is a platform user's profile row.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Department  string    `json:"department,omitempty"`
	YearOfStudy *int      `json:"year_of_study,omitempty"`
	GPA         *float64  `json:"gpa,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LinkedinURL string    `json:"linkedin_url,omitempty"`
	GithubURL   string    `json:"github_url,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents a student's profile edit. GPA is held on
// the 0-4 scale; nil leaves the stored value untouched.
type UpdateProfileRequest struct {
	FullName    string   `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Department  string   `json:"department,omitempty"`
	YearOfStudy *int     `json:"year_of_study,omitempty" validate:"omitempty,gte=1,lte=6"`
	GPA         *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	Phone       string   `json:"phone,omitempty"`
	LinkedinURL string   `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL   string   `json:"github_url,omitempty" validate:"omitempty,url"`
	AvatarURL   string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio         string   `json:"bio,omitempty"`
}
