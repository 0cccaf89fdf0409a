package schedule

import (
	"theme-sync/core/scheduler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	scheduler *scheduler.Scheduler
	handler   *Handler
}

// NewFeature creates a new Schedule feature. A nil scheduler disables it.
func NewFeature(s *scheduler.Scheduler, logger *zap.Logger) *Feature {
	return &Feature{scheduler: s, handler: NewHandler(s, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "schedule"
}

// IsEnabled reports whether a schedule is configured.
func (f *Feature) IsEnabled() bool {
	return f.scheduler != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
