package middleware

import (
	"crypto/subtle"
	"log/slog"
	"slices"

	"pumpdesk/config"
	"pumpdesk/internal/delivery/api/response"
	deliverycontext "pumpdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HeaderInternalToken carries the shared secret of administrative callers.
const HeaderInternalToken = "X-Internal-Token"

// AdminGuard protects administrative routes with a shared token and an optional IP allowlist.
type AdminGuard struct {
	token      string
	allowedIPs []string
	logger     *slog.Logger
}

// NewAdminGuard is the constructor for AdminGuard.
func NewAdminGuard(cfg *config.Config, logger *slog.Logger) *AdminGuard {
	guard := &AdminGuard{logger: logger}
	if cfg.Auth != nil {
		guard.token = cfg.Auth.InternalToken
		guard.allowedIPs = cfg.Auth.AllowedIPs
	}

	return guard
}

// Authorize rejects requests without the configured internal token.
// With no token configured every request is rejected.
func (g *AdminGuard) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger)

		if len(g.allowedIPs) > 0 && !slices.Contains(g.allowedIPs, c.RealIP()) {
			logger.Warn("Administrative request from disallowed address", slog.String("remote_ip", c.RealIP()))

			return response.Forbidden(c, "FORBIDDEN", "Access denied")
		}

		presented := c.Request().Header.Get(HeaderInternalToken)
		if g.token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(g.token)) != 1 {
			logger.Warn("Administrative request with invalid internal token")

			return response.Unauthorized(c, "INVALID_INTERNAL_TOKEN", "Missing or invalid internal token")
		}

		return next(c)
	}
}
