package server

import (
	"encoding/json"
	"net/http"

	"github.com/nikhil/placement-hub/internal/types"
)

// handleApply creates an application for the caller on one posting.
// Responds with the caller's full application list so the client can render
// its own write immediately.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ApplyRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.validator.Struct(req); err != nil {
			errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
			return
		}
	}

	if _, err := s.applications.Apply(r.Context(), userID, jobID, req.CoverLetter); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("failed to apply", "job_id", jobID, "error", err)
			errorResponse(w, status, "failed to apply")
			return
		}
		errorResponse(w, status, err.Error())
		return
	}

	applications, err := s.applications.ListForStudent(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list applications after apply", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load applications")
		return
	}

	jsonResponse(w, http.StatusCreated, applications)
}

// handleListApplications returns the caller's applications, newest first.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	applications, err := s.applications.ListForStudent(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load applications")
		return
	}

	jsonResponse(w, http.StatusOK, applications)
}

// handleListJobApplications returns the applications for one posting.
// Only the posting owner may list them.
func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	applications, err := s.applications.ListForJob(r.Context(), userID, jobID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("failed to list job applications", "job_id", jobID, "error", err)
			errorResponse(w, status, "failed to load applications")
			return
		}
		errorResponse(w, status, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, applications)
}

// handleMoveApplication advances an application through the review pipeline.
func (s *Server) handleMoveApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	appID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.MoveApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reviewer, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to load reviewer profile", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if reviewer == nil || !types.CanReviewApplications(reviewer.Role) {
		errorResponse(w, http.StatusForbidden, "only mentors, placement staff, and recruiters can review applications")
		return
	}

	app, err := s.applications.Move(r.Context(), reviewer, appID, &req)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("failed to move application", "application_id", appID, "error", err)
			errorResponse(w, status, "failed to update application")
			return
		}
		errorResponse(w, status, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, app)
}
