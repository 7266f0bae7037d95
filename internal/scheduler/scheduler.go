// Package scheduler supervises the sweep loop: one bounded sweep per
// interval, outcome captured for observability, and the loop itself never
// terminates on a sweep failure.
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/naval41/discord-application/internal/pipeline"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner is the sweep the scheduler drives.
type Runner interface {
	Run(ctx context.Context) (*pipeline.SweepStats, error)
}

type Scheduler struct {
	cron    *cron.Cron
	driver  Runner
	stats   *pipeline.StatsHolder
	logger  *zap.SugaredLogger
	spec    string
	running atomic.Bool
}

// New creates a Scheduler that runs one sweep every intervalHours hours.
func New(driver Runner, stats *pipeline.StatsHolder, intervalHours int, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		driver: driver,
		stats:  stats,
		logger: logger,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the sweep job and starts the cron. Also runs one sweep
// immediately so a fresh deployment does not wait a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Infow("scheduler started", "spec", s.spec)

	go s.runSweep(ctx)
	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Infow("scheduler stopped")
}

// runSweep invokes one sweep and records its outcome. Sweeps never
// overlap: a tick that fires while the previous sweep is still in flight
// is skipped. Errors and panics are captured here; the next tick always
// fires regardless.
func (s *Scheduler) runSweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warnw("previous sweep still running, skipping this tick")
		return
	}
	defer s.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("sweep panicked", "panic", r)
		}
	}()

	s.logger.Infow("sweep started")
	stats, err := s.driver.Run(ctx)
	if err != nil {
		stats.Error = err.Error()
		s.logger.Errorw("sweep failed", "err", err)
	}
	s.stats.Set(stats)
	s.logger.Infow("sweep complete",
		"pages", stats.PagesFetched,
		"persisted", stats.Persisted,
		"skipped_visited", stats.SkippedVisited,
		"not_interview", stats.NotInterview,
		"retry_later", stats.RetryLater,
	)
}
