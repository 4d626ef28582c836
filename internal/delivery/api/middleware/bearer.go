package middleware

import (
	"strings"

	"pumpdesk/config"
	deliverycontext "pumpdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// BearerMiddleware lifts the Authorization bearer credential into the request context.
// It never rejects: a missing or malformed header leaves the context without a
// token and the use case answers Unauthorized.
type BearerMiddleware struct {
	scheme string
}

// NewBearerMiddleware is the constructor for BearerMiddleware.
func NewBearerMiddleware(cfg *config.Config) *BearerMiddleware {
	scheme := "Bearer"
	if cfg.Auth != nil && cfg.Auth.BearerScheme != "" {
		scheme = cfg.Auth.BearerScheme
	}

	return &BearerMiddleware{scheme: scheme}
}

// Extract stores the token of a well-formed "<scheme> <token>" header.
func (m *BearerMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization), m.scheme); ok {
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithBearerToken(req.Context(), token)))
		}

		return next(c)
	}
}

// ParseBearer splits an Authorization header value. The scheme is matched case-insensitively.
func ParseBearer(header, scheme string) (string, bool) {
	gotScheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(gotScheme, scheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
