// Package advisor implements the AI career advisor: job recommendations and
// career tools backed by an LLM, each with a deterministic local fallback so
// gateway outages degrade output quality instead of failing requests.
package advisor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/types"
)

// ErrProfileNotFound is returned when the student has no profile row yet.
// Advisor features need profile data to anchor the analysis.
var ErrProfileNotFound = errors.New("profile not found, complete your profile to use AI tools")

// Service runs advisor operations against the database and an LLM client.
type Service struct {
	db     *db.DB
	client llm.Client
	logger *slog.Logger
}

// NewService creates an advisor service.
func NewService(database *db.DB, client llm.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{db: database, client: client, logger: logger}
}

// studentSnapshot is everything the advisor knows about one student.
type studentSnapshot struct {
	Profile        *types.Profile
	Skills         []types.StudentSkill
	Projects       []types.Project
	Certifications []types.Certification
}

// loadStudent gathers the student's profile, skills, projects and
// certifications concurrently. Any single query error fails the load; a
// missing profile is ErrProfileNotFound.
func (s *Service) loadStudent(ctx context.Context, studentID uuid.UUID) (*studentSnapshot, error) {
	snap := &studentSnapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.db.GetProfile(ctx, studentID)
		if err != nil {
			return err
		}
		snap.Profile = profile
		return nil
	})
	g.Go(func() error {
		skills, err := s.db.ListStudentSkills(ctx, studentID)
		if err != nil {
			return err
		}
		snap.Skills = skills
		return nil
	})
	g.Go(func() error {
		projects, err := s.db.ListProjects(ctx, studentID)
		if err != nil {
			return err
		}
		snap.Projects = projects
		return nil
	})
	g.Go(func() error {
		certs, err := s.db.ListCertifications(ctx, studentID)
		if err != nil {
			return err
		}
		snap.Certifications = certs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if snap.Profile == nil {
		return nil, ErrProfileNotFound
	}
	return snap, nil
}
