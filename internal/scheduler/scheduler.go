package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"result_ingestor/internal/domain"
)

// Syncer runs one ingestion cycle over every configured competition.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Scheduler struct {
	syncer       Syncer
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *slog.Logger

	running atomic.Bool
}

func NewScheduler(syncer Syncer, interval, cycleTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:       syncer,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger.With("component", "scheduler"),
	}
}

// Start runs a cycle immediately and then on every tick until ctx is done.
// A tick that fires while a cycle is still running is skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "cycle_timeout", s.cycleTimeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous cycle still running, skipping tick")
		return
	}
	defer s.running.Store(false)

	syncCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	if stats.Failed > 0 {
		s.logger.Warn("sync finished with failed competitions", "failed", stats.Failed)
	}
}
