package common

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Give the timed executor a task and a period.
// Run blocks and executes the task once per period until the
// context is cancelled. A run that takes longer than the period
// is reported, and the ticks it swallowed are dropped.
type TimedExecutor struct {
	name      string
	period    time.Duration
	stopwatch Stopwatch
	task      func(ctx context.Context)
}

// Create a timed executor provided a period and a task
func NewTimedExecutor(name string, period time.Duration, clock Clock, task func(ctx context.Context)) TimedExecutor {
	return TimedExecutor{
		name:      name,
		period:    period,
		stopwatch: NewStopwatch(period, clock),
		task:      task,
	}
}

func (te *TimedExecutor) Run(ctx context.Context, immediate bool) {
	log.Info().Str("executor", te.name).Dur("period", te.period).Msg("Starting timed executor")

	ticker := time.NewTicker(te.period)
	defer ticker.Stop()

	if immediate {
		te.execute(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("executor", te.name).Msg("Timed executor stopped")
			return
		case <-ticker.C:
			te.execute(ctx)
		}
	}
}

func (te *TimedExecutor) execute(ctx context.Context) {
	te.stopwatch.Start()
	te.task(ctx)
	te.stopwatch.Stop()
	if overran, by := te.stopwatch.Stopped(); overran {
		log.Warn().Str("executor", te.name).Dur("overrun", by).Msg("Task took longer than its period")
	}
}
