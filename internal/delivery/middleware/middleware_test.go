package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	deliverycontext "pumpdesk/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method: method, route: route, status: status})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	e.Use(m.Process)

	var ctxID string
	var hasLogger bool
	e.GET("/", func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-123", ctxID)
		assert.True(t, hasLogger)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := ulid.ParseStrict(generated)
		require.NoError(t, err)
		assert.Equal(t, generated, ctxID)
	})

	for name, clientID := range map[string]string{
		"log field injection": "abc\nlevel=ERROR msg=forged",
		"oversized":           strings.Repeat("a", 65),
		"spaces":              "req 1",
	} {
		t.Run("replaces "+name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, clientID)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, clientID, generated)
			_, err := ulid.ParseStrict(generated)
			assert.NoError(t, err)
		})
	}
}

func TestRequestIDMiddleware_LoggerCarriesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(m.Process)
	e.POST("/reset-password", func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("Password reset confirmed", slog.String("pump_id", "p-1"))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/reset-password", nil)
	req.RemoteAddr = "198.51.100.4:4000"
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "198.51.100.4", entry["client_ip"])
	assert.Equal(t, "/reset-password", entry["route"])
	assert.Equal(t, "p-1", entry["pump_id"])
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &recordingObserver{}
	m := NewMetricsMiddleware(observer, "/health")

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/customers/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/customers/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, observer.seen, 1)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/customers/:id", status: http.StatusNotFound}, observer.seen[0])
}
