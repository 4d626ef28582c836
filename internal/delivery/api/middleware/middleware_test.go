package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pumpdesk/config"
	deliverycontext "pumpdesk/internal/delivery/context"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := ParseBearer(tt.header, "Bearer")
		assert.Equal(t, tt.wantOK, ok, tt.header)
		assert.Equal(t, tt.wantToken, token, tt.header)
	}
}

func TestBearerMiddleware_Extract(t *testing.T) {
	m := NewBearerMiddleware(&config.Config{Auth: &config.AuthConfig{BearerScheme: "Token"}})
	e := echo.New()

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetBearerToken(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	}, m.Extract)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token xyz")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "xyz", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer xyz")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, seen)
}

func TestAdminGuard(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	serve := func(guard *AdminGuard, token, remoteAddr string) int {
		e := echo.New()
		e.POST("/admin", ok, guard.Authorize)

		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		if token != "" {
			req.Header.Set(HeaderInternalToken, token)
		}
		if remoteAddr != "" {
			req.RemoteAddr = remoteAddr
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	t.Run("unconfigured token rejects everything", func(t *testing.T) {
		guard := NewAdminGuard(&config.Config{Auth: &config.AuthConfig{}}, discardLogger())

		assert.Equal(t, http.StatusUnauthorized, serve(guard, "", ""))
		assert.Equal(t, http.StatusUnauthorized, serve(guard, "anything", ""))
	})

	t.Run("token match", func(t *testing.T) {
		guard := NewAdminGuard(&config.Config{Auth: &config.AuthConfig{InternalToken: "s3cret"}}, discardLogger())

		assert.Equal(t, http.StatusNoContent, serve(guard, "s3cret", ""))
		assert.Equal(t, http.StatusUnauthorized, serve(guard, "s3cre", ""))
	})

	t.Run("ip allowlist", func(t *testing.T) {
		guard := NewAdminGuard(&config.Config{Auth: &config.AuthConfig{
			InternalToken: "s3cret",
			AllowedIPs:    []string{"10.0.0.5"},
		}}, discardLogger())

		assert.Equal(t, http.StatusNoContent, serve(guard, "s3cret", "10.0.0.5:4321"))
		assert.Equal(t, http.StatusForbidden, serve(guard, "s3cret", "10.0.0.6:4321"))
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", domainerrors.ErrIndentNotFound, http.StatusNotFound, `"INDENT_NOT_FOUND"`},
		{"wrapped app error", errors.Wrap(domainerrors.ErrConflict, "ctx"), http.StatusConflict, `"CONFLICT"`},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, `"HTTP_ERROR"`},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, `"INTERNAL_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
