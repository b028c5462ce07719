package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikhil/placement-hub/internal/advisor"
)

// handleRecommendations returns AI job recommendations for the caller.
// Degraded results (gateway down, malformed model output) still return 200;
// the payload carries the degraded flag.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	rec, err := s.advisor.Recommend(r.Context(), userID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("failed to generate recommendations", "error", err)
			errorResponse(w, status, "failed to generate recommendations")
			return
		}
		errorResponse(w, status, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, rec)
}

// handleCareerTool dispatches one of the AI career tools.
func (s *Server) handleCareerTool(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var req advisor.ToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.advisor.RunTool(r.Context(), userID, req)
	if err != nil {
		var unknownAction *advisor.UnknownActionError
		if errors.As(err, &unknownAction) {
			errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("career tool failed", "action", req.Action, "error", err)
			errorResponse(w, status, "career tool failed")
			return
		}
		errorResponse(w, status, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, result)
}
