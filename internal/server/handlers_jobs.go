package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nikhil/placement-hub/internal/advisor"
	"github.com/nikhil/placement-hub/internal/matching"
	"github.com/nikhil/placement-hub/internal/types"
)

// BrowseJob is one row of the authenticated job browse list.
type BrowseJob struct {
	types.JobOpportunity
	MatchScore        int    `json:"match_score"`
	Recommended       bool   `json:"recommended"`
	HasApplied        bool   `json:"has_applied"`
	ApplicationStatus string `json:"application_status,omitempty"`
}

// BrowseResponse is the GET /jobs payload.
type BrowseResponse struct {
	Jobs      []BrowseJob `json:"jobs"`
	Reasoning string      `json:"recommendation_reasoning,omitempty"`
	Degraded  bool        `json:"recommendations_degraded,omitempty"`
}

// handleBrowseJobs loads the caller's view of the job board: active jobs
// filtered by the query, scored against the caller's profile, with
// recommended openings first. The pieces load concurrently and the
// recommendation call is best-effort; losing it degrades ordering, never the
// list itself.
func (s *Server) handleBrowseJobs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}

	var (
		profile      *types.Profile
		jobs         []types.JobOpportunity
		applications []types.Application
		rec          *advisor.Recommendation
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		p, err := s.db.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		list, err := s.db.ListActiveJobs(ctx)
		if err != nil {
			return err
		}
		jobs = list
		return nil
	})
	g.Go(func() error {
		apps, err := s.applications.ListForStudent(ctx, userID)
		if err != nil {
			return err
		}
		applications = apps
		return nil
	})
	g.Go(func() error {
		recommendation, err := s.advisor.Recommend(ctx, userID)
		if err != nil {
			// Recommendations are an enhancement. An incomplete profile or a
			// failed advisor call must not take the job board down.
			s.logger.Warn("recommendations unavailable for browse", "error", err)
			return nil
		}
		rec = recommendation
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load job board", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}

	recommended := matching.RecommendedSet{}
	reasoning := ""
	degraded := false
	if rec != nil {
		recommended = matching.ValidRecommendations(rec.RecommendedJobIDs, jobs)
		reasoning = rec.Reasoning
		degraded = rec.Degraded
	}

	query := matching.Query{
		Text:         r.URL.Query().Get("q"),
		JobType:      r.URL.Query().Get("job_type"),
		LocationType: r.URL.Query().Get("location_type"),
	}
	filtered := matching.Filter(jobs, query)
	ordered := matching.MergeAndSort(filtered, recommended)

	student := matching.StudentInputs{}
	if profile != nil {
		student.GPA = profile.GPA
	}

	statusByJob := make(map[uuid.UUID]string, len(applications))
	for _, app := range applications {
		statusByJob[app.JobID] = app.Status
	}

	now := time.Now()
	result := make([]BrowseJob, 0, len(ordered))
	for _, job := range ordered {
		status, applied := statusByJob[job.ID]
		result = append(result, BrowseJob{
			JobOpportunity:    job,
			MatchScore:        matching.Score(job, student, recommended, now),
			Recommended:       recommended.Contains(job.ID),
			HasApplied:        applied,
			ApplicationStatus: status,
		})
	}

	jsonResponse(w, http.StatusOK, BrowseResponse{
		Jobs:      result,
		Reasoning: reasoning,
		Degraded:  degraded,
	})
}

// requirePoster loads the caller's profile and checks the posting
// permission. Writes the error response itself on failure.
func (s *Server) requirePoster(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*types.Profile, bool) {
	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return nil, false
	}
	if profile == nil || !types.CanPostJobs(profile.Role) {
		errorResponse(w, http.StatusForbidden, "only placement staff and recruiters can manage job postings")
		return nil, false
	}
	return profile, true
}

// handleCreateJob creates a job posting. Restricted to tnp and recruiter roles.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	if _, ok := s.requirePoster(w, r, userID); !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if !req.ValidateStipendRange() {
		errorResponse(w, http.StatusBadRequest, "stipend_min must not exceed stipend_max")
		return
	}

	job, err := s.db.CreateJob(r.Context(), userID, &req)
	if err != nil {
		s.logger.Error("failed to create job", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob updates a posting. Owner-scoped: staff can only edit what
// they posted.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.requirePoster(w, r, userID); !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if !req.ValidateStipendRange() {
		errorResponse(w, http.StatusBadRequest, "stipend_min must not exceed stipend_max")
		return
	}

	job, err := s.db.UpdateJob(r.Context(), jobID, userID, &req)
	if err != nil {
		s.logger.Error("failed to update job", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	if job == nil {
		errorResponse(w, http.StatusNotFound, "job posting not found")
		return
	}

	jsonResponse(w, http.StatusOK, job)
}

// handleCloseJob closes a posting to new applications. Owner-scoped.
func (s *Server) handleCloseJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.requirePoster(w, r, userID); !ok {
		return
	}

	closed, err := s.db.CloseJob(r.Context(), jobID, userID)
	if err != nil {
		s.logger.Error("failed to close job", "error", err)
		errorResponse(w, http.StatusInternalServerError, "failed to close job")
		return
	}
	if !closed {
		errorResponse(w, http.StatusNotFound, "job posting not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"status": types.JobStatusClosed})
}
