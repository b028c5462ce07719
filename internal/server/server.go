package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nikhil/placement-hub/internal/advisor"
	"github.com/nikhil/placement-hub/internal/application"
	"github.com/nikhil/placement-hub/internal/config"
	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/events"
	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/server/middleware"
	"github.com/nikhil/placement-hub/internal/server/ratelimit"
	"github.com/nikhil/placement-hub/internal/sweeper"
)

// Server represents the HTTP server and its wired services.
type Server struct {
	httpServer   *http.Server
	db           *db.DB
	rateLimiter  *ratelimit.Limiter
	jwtService   *JWTService
	userService  *UserService
	authHandler  *AuthHandler
	applications *application.Service
	advisor      *advisor.Service
	publisher    *events.Publisher
	sweeper      *sweeper.Sweeper
	validator    *validator.Validate
	logger       *slog.Logger
}

// New creates a server instance wired against the given configuration. It
// connects to Postgres, builds the LLM client, and optionally connects to
// Redis when an URL is configured.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger := slog.Default()

	s := &Server{
		db:        database,
		validator: validator.New(),
		logger:    logger,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.userService = NewUserService(database, cfg.Password)
	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	var publisher *events.Publisher
	if cfg.RedisURL != "" {
		rdb, err := events.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		publisher = events.NewPublisher(rdb)
	}
	s.publisher = publisher

	s.applications = application.NewService(database, publisher)

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GatewayAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	s.advisor = advisor.NewService(database, llmClient, logger)

	s.sweeper, err = sweeper.New(database, cfg.SweepSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deadline sweeper: %w", err)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI endpoints wait on the gateway
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Protected routes go through the JWT middleware;
// the auth endpoints and health check stay open.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Job browsing and posting
	mux.Handle("GET /jobs", protected(s.handleBrowseJobs))
	mux.Handle("POST /jobs", protected(s.handleCreateJob))
	mux.Handle("PUT /jobs/{id}", protected(s.handleUpdateJob))
	mux.Handle("POST /jobs/{id}/close", protected(s.handleCloseJob))

	// Applications
	mux.Handle("POST /jobs/{id}/apply", protected(s.handleApply))
	mux.Handle("GET /applications", protected(s.handleListApplications))
	mux.Handle("GET /jobs/{id}/applications", protected(s.handleListJobApplications))
	mux.Handle("POST /applications/{id}/status", protected(s.handleMoveApplication))

	// Profile and portfolio
	mux.Handle("GET /profile", protected(s.handleGetProfile))
	mux.Handle("PUT /profile", protected(s.handleUpdateProfile))
	mux.Handle("GET /profile/completion", protected(s.handleProfileCompletion))
	mux.Handle("GET /profile/skills", protected(s.handleListStudentSkills))
	mux.Handle("POST /profile/skills", protected(s.handleAddSkill))
	mux.Handle("DELETE /profile/skills/{id}", protected(s.handleRemoveSkill))
	mux.Handle("GET /profile/projects", protected(s.handleListProjects))
	mux.Handle("POST /profile/projects", protected(s.handleCreateProject))
	mux.Handle("DELETE /profile/projects/{id}", protected(s.handleDeleteProject))
	mux.Handle("GET /profile/certifications", protected(s.handleListCertifications))
	mux.Handle("POST /profile/certifications", protected(s.handleCreateCertification))
	mux.Handle("DELETE /profile/certifications/{id}", protected(s.handleDeleteCertification))
	mux.Handle("GET /profile/achievements", protected(s.handleListAchievements))
	mux.Handle("GET /skills", protected(s.handleListSkillCatalog))

	// AI advisor
	mux.Handle("POST /ai/recommendations", protected(s.handleRecommendations))
	mux.Handle("POST /ai/tools", protected(s.handleCareerTool))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	s.sweeper.Start()

	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.sweeper.Stop()
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Warn("failed to close event publisher", "error", err)
		}
	}
	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// userIDFrom extracts the authenticated user ID, responding 401 on failure.
// The middleware guarantees presence on protected routes; this guards
// against handler wiring mistakes.
func userIDFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID path segment, responding 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, segment string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(segment))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", segment))
		return uuid.Nil, false
	}
	return id, true
}

// extractClientID extracts the client identifier from the request.
// For now this uses the IP address from RemoteAddr; X-Forwarded-For would
// need a trusted proxy list first.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn("rate limit exceeded",
		"limit", info.Limit,
		"remaining", info.Remaining,
		"reset_at", info.ResetTime.Format(time.RFC3339))

	jsonResponse(w, http.StatusTooManyRequests, response)
}
