package theme

import (
	"errors"
	"time"

	"theme-sync/core/idm"
	"theme-sync/core/logger"
	"theme-sync/core/reconcile"
	"theme-sync/core/server"
	"theme-sync/feature/theme/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for themes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the theme routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/theme/health", h.HandleHealth)
	api.Post("/theme", h.HandleGetTheme)
	api.Post("/themes", h.HandleGetThemes)
	api.Post("/theme/attributes", h.HandleGetThemeAttributes)
	api.Get("/theme/attributes/:pid/formatted", h.HandleFormattedAttributes)
	api.Post("/theme/update", h.HandleUpdateTheme)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := MapHTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return server.SendError(c, status, server.StatusLabel(status), err.Error())
}

// HandleHealth reports service liveness.
// @Summary Theme Health
// @Description Liveness probe of the theme service.
// @Tags theme
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/theme/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Success:   true,
		Service:   "theme",
		Status:    "healthy",
		Timestamp: server.Timestamp(time.Now()),
	})
}

// HandleGetTheme returns a theme's colorways grouped by style.
// @Summary Get Theme
// @Description Fetch all colorways of a theme and group them by style.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body models.ThemeRequest true "Theme id"
// @Success 200 {object} models.ThemeReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/theme [post]
func (h *Handler) HandleGetTheme(c *fiber.Ctx) error {
	id, verr := server.PositiveID(c.Body(), "ThemeId")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetTheme(c.UserContext(), id)
	if err != nil {
		return h.fail(c, l.With(zap.Int("theme_id", id)), "Theme fetch failed", err)
	}
	return c.JSON(report)
}

// HandleGetThemes returns several themes at once.
// @Summary Get Themes
// @Description Fetch colorways for several themes in parallel.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body models.ThemesRequest true "Theme ids"
// @Success 200 {object} models.ThemesReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/themes [post]
func (h *Handler) HandleGetThemes(c *fiber.Ctx) error {
	ids, verr := server.PositiveIDs(c.Body(), "ThemeIds")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetThemes(c.UserContext(), ids)
	if err != nil {
		return h.fail(c, l.With(zap.Ints("theme_ids", ids)), "Themes fetch failed", err)
	}
	return c.JSON(report)
}

// HandleGetThemeAttributes returns a theme with its mapped IDM attributes.
// @Summary Get Theme Attributes
// @Description Fetch a theme and resolve the IDM attributes named by its description.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body models.ThemeRequest true "Theme id"
// @Success 200 {object} models.AttributesReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/theme/attributes [post]
func (h *Handler) HandleGetThemeAttributes(c *fiber.Ctx) error {
	id, verr := server.PositiveID(c.Body(), "ThemeId")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetThemeAttributes(c.UserContext(), id)
	if err != nil {
		return h.fail(c, l.With(zap.Int("theme_id", id)), "Theme attributes fetch failed", err)
	}
	return c.JSON(report)
}

// HandleFormattedAttributes returns the flat attribute export for a PID.
// @Summary Formatted Attributes
// @Description Resolve a PID and flatten its attributes into the export shape.
// @Tags theme
// @Produce json
// @Param pid path string true "IDM PID (e.g. 'Theme_Attributes-115-0-LATEST')"
// @Success 200 {object} idm.FormattedAttributes
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/theme/attributes/{pid}/formatted [get]
func (h *Handler) HandleFormattedAttributes(c *fiber.Ctx) error {
	pid := c.Params("pid")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("pid", pid))

	if pid == "" {
		return h.fail(c, l, "Formatted attributes rejected", idm.ErrParse)
	}

	formatted, err := h.service.FormattedAttributes(c.UserContext(), pid)
	if err != nil {
		return h.fail(c, l, "Formatted attributes failed", err)
	}
	return c.JSON(formatted)
}

// HandleUpdateTheme writes a theme's attributes onto its colorways and
// reconciles the affected styles.
// @Summary Update Theme
// @Description Patch every colorway of a theme with its IDM descriptions, then reconcile each style.
// @Tags theme
// @Accept json
// @Produce json
// @Param request body models.ThemeRequest true "Theme id and optional dry run"
// @Success 200 {object} models.UpdateReport
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/theme/update [post]
func (h *Handler) HandleUpdateTheme(c *fiber.Ctx) error {
	id, verr := server.PositiveID(c.Body(), "ThemeId")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}
	dryRun, verr := server.OptionalBool(c.Body(), "DryRun")
	if verr != nil {
		return server.SendValidationError(c, verr)
	}

	l := logger.WithRayID(h.service.logger, c).With(zap.Int("theme_id", id))

	report, err := h.service.UpdateTheme(c.UserContext(), id, reconcile.Options{DryRun: dryRun})
	if err != nil {
		msg := "Theme update failed"
		if errors.Is(err, ErrNoStyles) {
			msg = "Theme has no styles"
		}
		return h.fail(c, l, msg, err)
	}
	return c.JSON(report)
}
