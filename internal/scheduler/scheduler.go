// Package scheduler runs a job at a fixed interval until it is stopped.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var (
	ErrAlreadyRunning = errors.New("scheduler is already running")
	ErrInvalidPeriod  = errors.New("interval must be at least one second")
)

// Job is run on every tick.
type Job interface {
	Run(ctx context.Context) error
}

type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Scheduler runs a Job every interval. A tick is skipped while the previous run is still going.
type Scheduler struct {
	interval time.Duration
	job      Job
	cron     *cron.Cron

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func New(interval time.Duration, job Job) (*Scheduler, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, interval)
	}
	logger := cronLogger{logger: slog.Default()}
	return &Scheduler{
		interval: interval,
		job:      job,
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}, nil
}

// Spec returns the cron schedule of the job.
func (s *Scheduler) Spec() string {
	return fmt.Sprintf("@every %s", s.interval)
}

// Start schedules the job. The first run happens one interval after Start.
// Runs are cancelled through their context when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	if _, err := s.cron.AddFunc(s.Spec(), func() {
		s.runJob(ctx)
	}); err != nil {
		cancel()
		return fmt.Errorf("cron.AddFunc(%s) > %w", s.Spec(), err)
	}
	s.cancel = cancel
	s.cron.Start()
	s.running = true

	slog.Default().Info("scheduler started", "interval", s.interval)
	return nil
}

func (s *Scheduler) runJob(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	if err := s.job.Run(ctx); err != nil {
		slog.Default().Error("scheduled job failed",
			"error", err,
			"duration", time.Since(start),
		)
		return
	}
	slog.Default().Debug("scheduled job finished", "duration", time.Since(start))
}

// Stop removes the job, cancels a running job and waits for it to return or for ctx to be done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	s.cancel()
	for _, entry := range s.cron.Entries() {
		s.cron.Remove(entry.ID)
	}

	select {
	case <-s.cron.Stop().Done():
		slog.Default().Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for the running job > %w", ctx.Err())
	}
}

// cronLogger writes the cron library logs to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
