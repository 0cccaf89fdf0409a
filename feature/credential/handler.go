package credential

import (
	"context"
	"errors"
	"net/http"
	"time"

	"theme-sync/core/logger"
	"theme-sync/core/server"
	"theme-sync/core/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Holder is the credential cache as seen by the HTTP layer.
type Holder interface {
	Info() token.Info
	Revoke(ctx context.Context) error
}

// InfoResponse is the body of the token info endpoint.
type InfoResponse struct {
	Success   bool       `json:"success"`
	TokenInfo token.Info `json:"tokenInfo"`
	Timestamp string     `json:"timestamp"`
}

// RevokeResponse is the body of the revoke endpoint.
type RevokeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Handler handles HTTP requests for the cached credential.
type Handler struct {
	holder Holder
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(holder Holder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{holder: holder, logger: logger}
}

// RegisterRoutes registers the credential routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/token")
	group.Get("/", h.HandleInfo)
	group.Post("/revoke", h.HandleRevoke)
}

// HandleInfo reports the cached credential state. The token itself is never returned.
// @Summary Token Info
// @Description Report whether a credential is cached and when it expires.
// @Tags token
// @Produce json
// @Success 200 {object} credential.InfoResponse
// @Router /api/token [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	return c.JSON(InfoResponse{
		Success:   true,
		TokenInfo: h.holder.Info(),
		Timestamp: server.Timestamp(time.Now()),
	})
}

// HandleRevoke revokes the cached credential at the provider.
// @Summary Revoke Token
// @Description Revoke the cached credential and clear it locally.
// @Tags token
// @Produce json
// @Success 200 {object} credential.RevokeResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/token/revoke [post]
func (h *Handler) HandleRevoke(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.holder.Revoke(c.UserContext()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, token.ErrAuth) {
			status = http.StatusBadGateway
		}
		l.Error("Token revoke failed", zap.Error(err))
		return server.SendError(c, status, server.StatusLabel(status), err.Error())
	}

	return c.JSON(RevokeResponse{
		Success:   true,
		Message:   "Token revoked",
		Timestamp: server.Timestamp(time.Now()),
	})
}
