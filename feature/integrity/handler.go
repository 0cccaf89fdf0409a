package integrity

import (
	"theme-sync/core/logger"
	"theme-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/:check", h.HandleSingleCheck)
}

// HandleIntegrityCheck runs every upstream check.
// @Summary Run All Integrity Checks
// @Description Probes the credential grant, PLM and IDM. Failures are reported per check.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Summary "Combined Report"
// @Failure 503 {object} integrity.Summary "At least one check failed"
// @Router /api/integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	summary := h.service.RunAll(c.UserContext())
	if !summary.Healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(summary)
	}
	return c.JSON(summary)
}

// HandleSingleCheck runs one upstream check by name.
// @Summary Run Integrity Check
// @Description Runs one check: credential, plm or idm.
// @Tags integrity
// @Produce json
// @Param check path string true "Check name"
// @Success 200 {object} checks.Report
// @Failure 404 {object} server.ErrorResponse
// @Failure 503 {object} checks.Report
// @Router /api/integrity/{check} [get]
func (h *Handler) HandleSingleCheck(c *fiber.Ctx) error {
	name := c.Params("check")
	report, ok := h.service.Run(c.UserContext(), name)
	if !ok {
		return server.SendError(c, fiber.StatusNotFound, server.StatusLabel(fiber.StatusNotFound), "unknown check "+name)
	}
	if report.Error != "" {
		logger.WithRayID(h.service.logger, c).Warn("Integrity check failed", zap.String("check", name), zap.String("error", report.Error))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
