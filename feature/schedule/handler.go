package schedule

import (
	"errors"

	"theme-sync/core/logger"
	"theme-sync/core/scheduler"
	"theme-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync schedule.
type Handler struct {
	scheduler *scheduler.Scheduler
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(s *scheduler.Scheduler, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{scheduler: s, logger: logger}
}

// RegisterRoutes registers the schedule routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/schedule")
	group.Get("/", h.HandleStatus)
	group.Post("/run", h.HandleRun)
}

// HandleStatus reports the schedule, next activation and last run.
// @Summary Schedule Status
// @Description Report the cron schedule of theme syncs and the outcome of the last run.
// @Tags schedule
// @Produce json
// @Success 200 {object} scheduler.Status
// @Router /api/schedule [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.scheduler.Status())
}

// HandleRun triggers a sync run immediately.
// @Summary Run Scheduled Sync
// @Description Run the scheduled theme sync now. Rejected while a run is active.
// @Tags schedule
// @Produce json
// @Success 200 {object} scheduler.Run
// @Failure 409 {object} server.ErrorResponse
// @Failure 502 {object} scheduler.Run
// @Router /api/schedule/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	run, err := h.scheduler.RunNow(c.UserContext())
	switch {
	case errors.Is(err, scheduler.ErrRunning):
		return server.SendError(c, fiber.StatusConflict, "Conflict", err.Error())
	case err != nil:
		l.Error("Manual sync run failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(run)
	}
	return c.JSON(run)
}
