package integrity

import (
	"context"
	"time"

	"theme-sync/core/server"
	"theme-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Summary is the combined result of every upstream check.
type Summary struct {
	Healthy   bool            `json:"healthy"`
	Checks    []checks.Report `json:"checks"`
	Timestamp string          `json:"timestamp"`
}

// Service runs upstream integrity checks.
type Service struct {
	checks []checks.Check
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(logger *zap.Logger, list ...checks.Check) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{checks: list, logger: logger}
}

// Names lists the registered checks in order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.checks))
	for _, c := range s.checks {
		names = append(names, c.Name)
	}
	return names
}

// RunAll runs every check in parallel. A failing check never stops the others.
func (s *Service) RunAll(ctx context.Context) Summary {
	reports := make([]checks.Report, len(s.checks))

	var g errgroup.Group
	for i, c := range s.checks {
		i, c := i, c
		g.Go(func() error {
			reports[i] = checks.Run(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	healthy := true
	for _, r := range reports {
		if r.Status != checks.StatusOK {
			healthy = false
			s.logger.Warn("Integrity check failed", zap.String("check", r.Name), zap.String("error", r.Error))
		}
	}
	return Summary{Healthy: healthy, Checks: reports, Timestamp: server.Timestamp(time.Now())}
}

// Run runs the named check. ok is false when no check has that name.
func (s *Service) Run(ctx context.Context, name string) (report checks.Report, ok bool) {
	for _, c := range s.checks {
		if c.Name == name {
			return checks.Run(ctx, c), true
		}
	}
	return checks.Report{}, false
}
