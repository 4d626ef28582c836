package middleware

import (
	"log/slog"

	deliverycontext "pumpdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// maxClientRequestIDLength bounds ids taken from the X-Request-Id header.
const maxClientRequestIDLength = 64

// RequestIDMiddleware tags every request with an id and a request-scoped logger.
// Services log through that logger, so pump and account ids written by the
// reset flow share the request_id and client_ip of the call that caused them.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process accepts a well-formed client id or issues a ULID, then stores id and
// logger on both echo.Context and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !isValidRequestID(requestID) {
			requestID = ulid.Make().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("client_ip", c.RealIP()),
			slog.String("route", c.Path()),
		)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// isValidRequestID rejects ids that could forge log fields or bloat every line.
func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxClientRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
