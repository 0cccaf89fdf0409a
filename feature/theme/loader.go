package theme

import (
	"theme-sync/core/idm"
	"theme-sync/core/plm"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Theme feature.
func NewFeature(store plm.Store, mapper *idm.Mapper, concurrency int, logger *zap.Logger) *Feature {
	svc := NewService(store, mapper, concurrency, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "theme"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
