// Package sweeper closes job postings whose application deadline has passed.
// Postings stay active until a recruiter closes them or the sweep catches
// them; the sweep keeps deadline enforcement honest without putting a clock
// check on every read path.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nikhil/placement-hub/internal/db"
)

const sweepTimeout = 30 * time.Second

// Sweeper runs the deadline sweep on a cron schedule.
type Sweeper struct {
	db     *db.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a sweeper with the given cron schedule (standard 5-field
// syntax). The schedule is validated here so a bad expression fails startup
// instead of silently never running.
func New(database *db.DB, schedule string, logger *slog.Logger) (*Sweeper, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Sweeper{
		db:     database,
		cron:   cron.New(),
		logger: logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins the schedule. Jobs run in the cron's own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
	s.logger.Info("deadline sweeper started")
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("deadline sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	closed, err := s.db.CloseExpiredJobs(ctx)
	if err != nil {
		s.logger.Error("deadline sweep failed", "error", err)
		return
	}
	if closed > 0 {
		s.logger.Info("closed expired job postings", "count", closed)
	}
}
