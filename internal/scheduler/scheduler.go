package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dball/internal/services/reconcile"
)

const defaultTimeout = 5 * time.Minute

// Config holds configuration for the sweep scheduler
type Config struct {
	Reconciler reconcile.Service

	// Schedule is a standard cron expression or descriptor such as "@every 10m"
	Schedule string

	// Timeout bounds a single sweep. Defaults to five minutes.
	Timeout time.Duration

	Logger logrus.FieldLogger
}

// Scheduler runs the settlement sweep on a cron schedule.
// Overlapping runs are skipped, so a slow sweep never stacks up behind itself.
type Scheduler struct {
	reconciler reconcile.Service
	timeout    time.Duration
	logger     logrus.FieldLogger
	cron       *cron.Cron
}

// New validates cfg and registers the sweep job. Call Start to begin running it.
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Reconciler == nil {
		return nil, ErrNilReconciler
	}

	if cfg.Schedule == "" {
		return nil, ErrEmptySchedule
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s := &Scheduler{
		reconciler: cfg.Reconciler,
		timeout:    timeout,
		logger:     logger.WithField("component", "scheduler"),
	}

	cronLogger := cron.PrintfLogger(s.logger)
	s.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := s.cron.AddFunc(cfg.Schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start begins running the sweep in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Sweep scheduler started")
}

// Stop halts the schedule and waits for a running sweep to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Sweep scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs one sweep immediately
func (s *Scheduler) RunOnce(ctx context.Context) (*reconcile.SweepOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	output, err := s.reconciler.Sweep(ctx, &reconcile.SweepInput{})
	if err != nil {
		s.logger.WithError(err).Error("Settlement sweep failed")
		return nil, err
	}

	for _, failure := range output.Failed {
		s.logger.WithError(failure.Err).WithField("period", failure.Period).Warn("Period skipped by sweep")
	}

	s.logger.WithFields(logrus.Fields{
		"settled": len(output.Settled),
		"cleared": len(output.Cleared),
		"failed":  len(output.Failed),
	}).Info("Scheduled sweep finished")

	return output, nil
}

func (s *Scheduler) run() {
	_, _ = s.RunOnce(context.Background())
}
