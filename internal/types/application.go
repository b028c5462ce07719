package types

import (
	"time"

	"github.com/google/uuid"
)

// Application status values. The implicit initial state is the absence of a
// row for a (student, job) pair; "selected" and "rejected" are terminal.
const (
	StatusApplied            = "applied"
	StatusUnderReview        = "under_review"
	StatusInterviewScheduled = "interview_scheduled"
	StatusShortlisted        = "shortlisted"
	StatusSelected           = "selected"
	StatusRejected           = "rejected"
)

// Application links a student profile to a job posting.
type Application struct {
	ID                uuid.UUID `json:"id"`
	StudentID         uuid.UUID `json:"student_id"`
	JobID             uuid.UUID `json:"job_id"`
	CoverLetter       string    `json:"cover_letter,omitempty"`
	Status            string    `json:"status"`
	MentorFeedback    string    `json:"mentor_feedback,omitempty"`
	RecruiterFeedback string    `json:"recruiter_feedback,omitempty"`
	AppliedAt         time.Time `json:"applied_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ApplyRequest is a student's application to one posting.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter,omitempty" validate:"max=5000"`
}

// MoveApplicationRequest advances an application through the review
// pipeline. Feedback is optional and stored against the reviewer's role.
type MoveApplicationRequest struct {
	Status   string `json:"status" validate:"required,oneof=under_review interview_scheduled shortlisted selected rejected"`
	Feedback string `json:"feedback,omitempty" validate:"max=5000"`
}
