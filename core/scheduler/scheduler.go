package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrRunning is returned by RunNow while another run is in progress.
var ErrRunning = errors.New("a run is already in progress")

// Job is the work executed on every tick. The returned string summarises the run.
type Job func(ctx context.Context) (string, error)

// Run records one execution of the job.
type Run struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Summary    string    `json:"summary,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Status describes the scheduler for the status endpoint.
type Status struct {
	Schedule string     `json:"schedule"`
	Running  bool       `json:"running"`
	NextRun  *time.Time `json:"nextRun,omitempty"`
	LastRun  *Run       `json:"lastRun,omitempty"`
}

// Scheduler runs a job on a cron schedule. Runs never overlap.
type Scheduler struct {
	expr     string
	schedule cron.Schedule
	job      Job
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	running bool
	next    time.Time
	last    *Run
}

// New parses the cron expression expr and creates a scheduler for job.
func New(expr string, job Job, logger *zap.Logger) (*Scheduler, error) {
	expr = strings.TrimSpace(expr)
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{expr: expr, schedule: sched, job: job, logger: logger, now: time.Now}, nil
}

// Next returns the first activation after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Start runs the job on schedule until ctx is cancelled. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		for {
			now := s.now()
			next := s.schedule.Next(now)
			s.mu.Lock()
			s.next = next
			s.mu.Unlock()

			s.logger.Info("Next scheduled run", zap.Time("at", next), zap.Duration("in", next.Sub(now).Round(time.Second)))

			timer := time.NewTimer(next.Sub(now))
			select {
			case <-ctx.Done():
				timer.Stop()
				s.logger.Info("Scheduler stopped")
				return
			case <-timer.C:
			}

			if _, err := s.RunNow(ctx); errors.Is(err, ErrRunning) {
				s.logger.Warn("Skipping scheduled run; previous run still active")
			}
		}
	}()
}

// RunNow executes the job immediately unless a run is already active.
func (s *Scheduler) RunNow(ctx context.Context) (Run, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Run{}, ErrRunning
	}
	s.running = true
	s.mu.Unlock()

	run := Run{StartedAt: s.now()}
	summary, err := s.job(ctx)
	run.FinishedAt = s.now()
	run.Summary = summary
	if err != nil {
		run.Error = err.Error()
		s.logger.Error("Scheduled run failed", zap.Error(err))
	} else {
		s.logger.Info("Scheduled run completed", zap.String("summary", summary))
	}

	s.mu.Lock()
	s.running = false
	s.last = &run
	s.mu.Unlock()
	return run, err
}

// Status reports the schedule, the next activation and the last run.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Schedule: s.expr, Running: s.running}
	if !s.next.IsZero() {
		next := s.next
		st.NextRun = &next
	}
	if s.last != nil {
		last := *s.last
		st.LastRun = &last
	}
	return st
}
