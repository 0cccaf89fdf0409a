package style

import (
	"theme-sync/core/logger"
	"theme-sync/core/reconcile"
	"theme-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for styles.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the style routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/style")
	group.Post("/update", h.HandleUpdateStyle)
}

// HandleUpdateStyle patches every colorway of a style and reconciles the style.
// @Summary Update Style
// @Description Write theme attributes onto all colorways of a style, then reconcile its status and theme.
// @Tags style
// @Accept json
// @Produce json
// @Param request body models.StyleRequest true "Style id and optional dry run"
// @Success 200 {object} models.UpdateReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/style/update [post]
func (h *Handler) HandleUpdateStyle(c *fiber.Ctx) error {
	id, verr := server.PositiveID(c.Body(), "StyleId")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}
	dryRun, verr := server.OptionalBool(c.Body(), "DryRun")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}

	l := logger.WithRayID(h.service.logger, c).With(zap.Int("style_id", id))

	report, err := h.service.UpdateStyle(c.UserContext(), id, reconcile.Options{DryRun: dryRun})
	if err != nil {
		status := MapHTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Style update failed", zap.Error(err))
		} else {
			l.Warn("Style update rejected", zap.Error(err))
		}
		return server.SendError(c, status, server.StatusLabel(status), err.Error())
	}
	return c.JSON(report)
}
