package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type Scheduler struct {
	log        *slog.Logger
	interval   time.Duration
	runOnStart bool
	runner     Runner
	publisher  ReportPublisher
	trigger    chan struct{}
}

func NewScheduler(
	log *slog.Logger,
	interval time.Duration,
	runOnStart bool,
	runner Runner,
	publisher ReportPublisher,
) *Scheduler {
	return &Scheduler{
		log:        log,
		interval:   interval,
		runOnStart: runOnStart,
		runner:     runner,
		publisher:  publisher,
		trigger:    make(chan struct{}, 1),
	}
}

// Run starts a pipeline run on every tick and on every manual trigger. Runs
// are executed one at a time; triggers received during a run are coalesced
// into a single follow-up run.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.RunOnce(ctx)
	}

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scheduled run started")
			s.RunOnce(ctx)

		case <-s.trigger:
			s.log.DebugContext(ctx, "triggered run started")
			s.RunOnce(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) *domain.RunReport {
	report := s.runner.Run(ctx)
	s.publisher.Report(context.WithoutCancel(ctx), report)

	return report
}

// Trigger requests a run as soon as the scheduler is idle. It returns false if
// a request is already pending.
func (s *Scheduler) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}
