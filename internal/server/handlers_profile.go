package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/profile"
	"github.com/nikhil/placement-hub/internal/types"
)

// handleGetProfile returns the caller's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	p, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to load profile", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if p == nil {
		errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	jsonResponse(w, http.StatusOK, p)
}

// handleUpdateProfile applies a partial update to the caller's profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	p, err := s.db.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		s.logger.Error("failed to update profile", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if p == nil {
		errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	jsonResponse(w, http.StatusOK, p)
}

// handleProfileCompletion returns the caller's profile completion score.
// Portfolio sections load concurrently.
func (s *Server) handleProfileCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var (
		p        *types.Profile
		projects []types.Project
		skills   []types.StudentSkill
		certs    []types.Certification
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		loaded, err := s.db.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		p = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := s.db.ListProjects(ctx, userID)
		if err != nil {
			return err
		}
		projects = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := s.db.ListStudentSkills(ctx, userID)
		if err != nil {
			return err
		}
		skills = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := s.db.ListCertifications(ctx, userID)
		if err != nil {
			return err
		}
		certs = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load completion inputs", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to compute completion")
		return
	}
	if p == nil {
		errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int{
		"completion_score": profile.CompletionScore(p, projects, skills, certs),
	})
}

// handleListSkillCatalog returns the platform-wide skill catalog.
func (s *Server) handleListSkillCatalog(w http.ResponseWriter, r *http.Request) {
	skills, err := s.db.ListSkills(r.Context())
	if err != nil {
		s.logger.Error("failed to list skills", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load skills")
		return
	}
	jsonResponse(w, http.StatusOK, skills)
}

// handleListStudentSkills returns the caller's skills.
func (s *Server) handleListStudentSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	skills, err := s.db.ListStudentSkills(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list student skills", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load skills")
		return
	}
	jsonResponse(w, http.StatusOK, skills)
}

// handleAddSkill attaches a catalog skill to the caller's profile.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req types.AddSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	skill, err := s.db.AddStudentSkill(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			errorResponse(w, http.StatusConflict, "skill already added")
			return
		}
		s.logger.Error("failed to add skill", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to add skill")
		return
	}
	if skill == nil {
		errorResponse(w, http.StatusNotFound, "skill not found in catalog")
		return
	}

	jsonResponse(w, http.StatusCreated, skill)
}

// handleRemoveSkill detaches a skill from the caller's profile.
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	skillID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	removed, err := s.db.RemoveStudentSkill(r.Context(), userID, skillID)
	if err != nil {
		s.logger.Error("failed to remove skill", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to remove skill")
		return
	}
	if !removed {
		errorResponse(w, http.StatusNotFound, "skill not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListProjects returns the caller's portfolio projects.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	projects, err := s.db.ListProjects(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load projects")
		return
	}
	jsonResponse(w, http.StatusOK, projects)
}

// handleCreateProject adds a portfolio project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	project, err := s.db.CreateProject(r.Context(), userID, &req)
	if err != nil {
		s.logger.Error("failed to create project", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	jsonResponse(w, http.StatusCreated, project)
}

// handleDeleteProject removes a portfolio project. Owner-scoped.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteProject(r.Context(), userID, projectID)
	if err != nil {
		s.logger.Error("failed to delete project", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	if !deleted {
		errorResponse(w, http.StatusNotFound, "project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListCertifications returns the caller's certifications.
func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	certs, err := s.db.ListCertifications(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list certifications", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load certifications")
		return
	}
	jsonResponse(w, http.StatusOK, certs)
}

// handleCreateCertification adds a certification.
func (s *Server) handleCreateCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req types.CreateCertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	cert, err := s.db.CreateCertification(r.Context(), userID, &req)
	if err != nil {
		s.logger.Error("failed to create certification", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to create certification")
		return
	}

	jsonResponse(w, http.StatusCreated, cert)
}

// handleDeleteCertification removes a certification. Owner-scoped.
func (s *Server) handleDeleteCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	certID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteCertification(r.Context(), userID, certID)
	if err != nil {
		s.logger.Error("failed to delete certification", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to delete certification")
		return
	}
	if !deleted {
		errorResponse(w, http.StatusNotFound, "certification not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListAchievements returns the caller's platform-awarded badges.
func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	achievements, err := s.db.ListAchievements(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list achievements", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load achievements")
		return
	}
	jsonResponse(w, http.StatusOK, achievements)
}
