package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request counts and latencies labelled by route template.
type MetricsMiddleware struct {
	observer HTTPObserver
	skip     map[string]struct{}
}

// NewMetricsMiddleware creates a metrics middleware ignoring the given routes.
func NewMetricsMiddleware(observer HTTPObserver, skipRoutes ...string) *MetricsMiddleware {
	skip := make(map[string]struct{}, len(skipRoutes))
	for _, route := range skipRoutes {
		skip[route] = struct{}{}
	}

	return &MetricsMiddleware{observer: observer, skip: skip}
}

// Handle observes the request after the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if _, ok := m.skip[route]; ok {
			return err
		}
		if route == "" {
			route = "unmatched"
		}

		// Errors are rendered by the HTTPErrorHandler after the chain returns.
		if err != nil {
			c.Error(err)
		}
		m.observer.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
