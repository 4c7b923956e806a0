// Package scheduler runs periodic background jobs on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// jobTimeout bounds a single job run.
const jobTimeout = 2 * time.Minute

// Job is a unit of background work.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner whose jobs log through zerolog and never
// overlap with themselves.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a Scheduler evaluating specs in UTC.
func New(log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	cl := cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log: log,
	}
}

// Add registers job under name. An empty spec leaves the job disabled.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		s.log.Info().Str("job", name).Msg("Job disabled")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			s.log.Error().Err(err).Str("job", name).Msg("Job failed")
			return
		}
		s.log.Info().Str("job", name).Dur("duration", time.Since(start)).Msg("Job finished")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s with spec %q: %w", name, spec, err)
	}

	s.log.Info().Str("job", name).Str("spec", spec).Msg("Job scheduled")
	return nil
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
