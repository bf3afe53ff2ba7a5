// Package scheduler fires the auction sweep and the ending-soon reminder on
// fixed intervals, the in-process equivalent of the cron triggers.
package scheduler

import (
	"context"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/utils"

	"golang.org/x/sync/errgroup"
)

// Triggers are the periodic passes of the bidding service.
type Triggers interface {
	SweepEndedAuctions(ctx context.Context) (bidding.SweepReport, error)
	NotifyEndingSoon(ctx context.Context) (bidding.ReminderReport, error)
}

type Runner struct {
	triggers           Triggers
	sweepInterval      time.Duration
	endingSoonInterval time.Duration
}

func NewRunner(triggers Triggers, sweepInterval, endingSoonInterval time.Duration) *Runner {
	return &Runner{
		triggers:           triggers,
		sweepInterval:      sweepInterval,
		endingSoonInterval: endingSoonInterval,
	}
}

// Run starts both loops and blocks until ctx is cancelled. Each pass runs
// once immediately. A failed pass is logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop(ctx, "auction sweep", r.sweepInterval, func(ctx context.Context) error {
			report, err := r.triggers.SweepEndedAuctions(ctx)
			if err == nil && report.Processed > 0 {
				utils.Info("Scheduled auction sweep settled products", map[string]any{"processed": report.Processed})
			}
			return err
		})
	})
	g.Go(func() error {
		return loop(ctx, "ending soon reminder", r.endingSoonInterval, func(ctx context.Context) error {
			report, err := r.triggers.NotifyEndingSoon(ctx)
			if err == nil && report.Count > 0 {
				utils.Info("Scheduled ending soon reminders sent", map[string]any{"count": report.Count})
			}
			return err
		})
	})

	return g.Wait()
}

func loop(ctx context.Context, name string, interval time.Duration, pass func(context.Context) error) error {
	run := func() {
		if err := pass(ctx); err != nil && ctx.Err() == nil {
			utils.Error("Scheduled pass failed", map[string]any{"pass": name, "error": err.Error()})
		}
	}

	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("Scheduler loop stopped", map[string]any{"pass": name})
			return nil
		case <-ticker.C:
			run()
		}
	}
}
