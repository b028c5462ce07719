package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/events"
	"github.com/nikhil/placement-hub/internal/types"
)

// Typed errors surfaced to handlers. All are expected, recoverable
// conditions; none aborts anything beyond the one request.
var (
	// ErrAlreadyApplied is returned when the (student, job) pair already has
	// an application row. User-facing, never retried.
	ErrAlreadyApplied = errors.New("you have already applied for this position")
	// ErrJobNotOpen is returned when the posting is closed, a draft, or past
	// its application deadline.
	ErrJobNotOpen = errors.New("this position is no longer accepting applications")
	// ErrJobNotFound is returned when the posting does not exist.
	ErrJobNotFound = errors.New("job posting not found")
	// ErrApplicationNotFound is returned when the application does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrNotAuthorized is returned when the caller may not review the
	// application (only the posting owner can).
	ErrNotAuthorized = errors.New("not authorized to review this application")
)

// ForbiddenTransitionError reports a status move the state machine rejects.
type ForbiddenTransitionError struct {
	From string
	To   string
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("transition %s to %s is not allowed", e.From, e.To)
}

// Service encapsulates the application lifecycle. It is transport-agnostic;
// the HTTP layer translates its errors into status codes.
type Service struct {
	db     *db.DB
	events *events.Publisher
}

// NewService returns a configured Service. events may be nil.
func NewService(database *db.DB, publisher *events.Publisher) *Service {
	return &Service{db: database, events: publisher}
}

// Apply creates an application in the "applied" state for (studentID, jobID).
// The posting must exist, be active, and not be past its deadline. Duplicate
// applications surface as ErrAlreadyApplied; the database uniqueness
// constraint decides, which also covers the double-submit race.
func (s *Service) Apply(ctx context.Context, studentID, jobID uuid.UUID, coverLetter string) (*types.Application, error) {
	job, err := s.db.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.Status != types.JobStatusActive {
		return nil, ErrJobNotOpen
	}
	if job.ApplicationDeadline != nil && job.ApplicationDeadline.Before(time.Now()) {
		return nil, ErrJobNotOpen
	}

	app, err := s.db.InsertApplication(ctx, studentID, jobID, coverLetter)
	if err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	s.events.ApplicationSubmitted(ctx, app.ID, studentID, jobID)
	return app, nil
}

// ListForStudent returns the caller's applications, newest first. Handlers
// call this again after Apply so the client always reads its own write.
func (s *Service) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]types.Application, error) {
	return s.db.ListApplicationsByStudent(ctx, studentID)
}

// ListForJob returns every application for a posting the reviewer owns.
func (s *Service) ListForJob(ctx context.Context, reviewerID, jobID uuid.UUID) ([]types.Application, error) {
	job, err := s.db.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.PostedBy != reviewerID {
		return nil, ErrNotAuthorized
	}
	return s.db.ListApplicationsByJob(ctx, jobID)
}

// Move transitions an application to a new status on behalf of a reviewer.
// The reviewer must own the posting, and the move must be legal per the
// state machine. Feedback, when present, is stored against the reviewer's
// role (mentors vs recruiters/tnp).
func (s *Service) Move(ctx context.Context, reviewer *types.Profile, appID uuid.UUID, req *types.MoveApplicationRequest) (*types.Application, error) {
	newStatus, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	app, err := s.db.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	job, err := s.db.GetJob(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || (job.PostedBy != reviewer.UserID && reviewer.Role != types.RoleMentor) {
		return nil, ErrNotAuthorized
	}

	if !IsTransitionAllowed(app.Status, newStatus) {
		return nil, &ForbiddenTransitionError{From: app.Status, To: newStatus}
	}

	feedbackColumn := "recruiter_feedback"
	if reviewer.Role == types.RoleMentor {
		feedbackColumn = "mentor_feedback"
	}

	updated, err := s.db.UpdateApplicationStatus(ctx, appID, newStatus, feedbackColumn, req.Feedback)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrApplicationNotFound
	}

	s.events.ApplicationMoved(ctx, appID, app.Status, newStatus)
	return updated, nil
}
