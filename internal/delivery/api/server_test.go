package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pumpdesk/config"
	apimiddleware "pumpdesk/internal/delivery/api/middleware"
	"pumpdesk/internal/delivery/api/router"
	"pumpdesk/internal/delivery/api/router/handler"
	deliverycontext "pumpdesk/internal/delivery/context"
	"pumpdesk/internal/infra/metrics"
	mockUC "pumpdesk/internal/mocks/usecase"
	"pumpdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo    *echo.Echo
	resetUC *mockUC.MockPasswordResetUsecase
	salesUC *mockUC.MockSalesUsecase
}

func newServerFixture(t *testing.T, opts ...func(*config.Config)) *serverFixture {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{BearerScheme: "Bearer", InternalToken: "internal-secret"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	for _, opt := range opts {
		opt(cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &serverFixture{
		resetUC: mockUC.NewMockPasswordResetUsecase(t),
		salesUC: mockUC.NewMockSalesUsecase(t),
	}

	params := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			CredentialUC: mockUC.NewMockCredentialUsecase(t),
			ResetUC:      f.resetUC,
			Logger:       logger,
		}),
		FuelPumpHandler: handler.NewFuelPumpHandler(handler.FuelPumpHandlerParams{FuelPumpUC: mockUC.NewMockFuelPumpUsecase(t)}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: mockUC.NewMockCustomerUsecase(t)}),
		StaffHandler:    handler.NewStaffHandler(handler.StaffHandlerParams{StaffUC: mockUC.NewMockStaffUsecase(t)}),
		FuelHandler:     handler.NewFuelHandler(handler.FuelHandlerParams{FuelUC: mockUC.NewMockFuelUsecase(t)}),
		SalesHandler:    handler.NewSalesHandler(handler.SalesHandlerParams{SalesUC: f.salesUC}),
		BearerAuth:      apimiddleware.NewBearerMiddleware(cfg),
		AdminGuard:      apimiddleware.NewAdminGuard(cfg, logger),
		Metrics:         metrics.New(),
		Config:          cfg,
	}
	e, err := NewEcho(cfg, logger, params.Metrics, params)
	require.NoError(t, err)
	f.echo = e

	return f
}

func (f *serverFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ResetPasswordRoute(t *testing.T) {
	f := newServerFixture(t)
	body := `{"email":"admin@example.com","newPassword":"NewPass1"}`

	f.resetUC.EXPECT().
		ConfirmReset(mock.Anything, &usecase.ConfirmResetInput{
			Email:       "admin@example.com",
			NewPassword: "NewPass1",
			BearerToken: "tok",
		}).
		Return(nil).
		Once()

	rec := f.do(http.MethodPost, "/reset-password", body, map[string]string{echo.HeaderAuthorization: "Bearer tok"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = f.do(http.MethodPost, "/reset-password", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AdminAllowlistUsesClientAddress(t *testing.T) {
	const body = `{"email":"admin@example.com","newPassword":"NewPass1"}`

	adminRequest := func(f *serverFixture, remoteAddr, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/reset-password", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(apimiddleware.HeaderInternalToken, "internal-secret")
		req.RemoteAddr = remoteAddr
		if forwardedFor != "" {
			req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		}
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		return rec.Code
	}

	t.Run("forwarded header from an untrusted peer is ignored", func(t *testing.T) {
		f := newServerFixture(t, func(cfg *config.Config) {
			cfg.Auth.AllowedIPs = []string{"10.0.0.1"}
		})

		assert.Equal(t, http.StatusForbidden, adminRequest(f, "203.0.113.9:5000", "10.0.0.1"))
	})

	t.Run("peer address on the allowlist passes", func(t *testing.T) {
		f := newServerFixture(t, func(cfg *config.Config) {
			cfg.Auth.AllowedIPs = []string{"10.0.0.1"}
		})
		f.resetUC.EXPECT().RequestReset(mock.Anything, mock.Anything).Return(nil).Once()

		assert.Equal(t, http.StatusOK, adminRequest(f, "10.0.0.1:5000", ""))
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		f := newServerFixture(t, func(cfg *config.Config) {
			cfg.Auth.AllowedIPs = []string{"10.0.0.1"}
			cfg.HTTP.TrustedProxies = []string{"203.0.113.0/24"}
		})
		f.resetUC.EXPECT().RequestReset(mock.Anything, mock.Anything).Return(nil).Once()

		assert.Equal(t, http.StatusOK, adminRequest(f, "203.0.113.9:5000", "10.0.0.1"))
		assert.Equal(t, http.StatusForbidden, adminRequest(f, "203.0.113.9:5000", "10.0.0.1, 198.51.100.7"))
	})
}

func TestServer_InvalidTrustedProxy(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.TrustedProxies = []string{"not-a-cidr"}

	_, err := apimiddleware.NewIPExtractor(cfg)
	assert.Error(t, err)
}

func TestServer_MetricsExposeServedRoutes(t *testing.T) {
	f := newServerFixture(t)
	f.salesUC.EXPECT().ListTransactions(mock.Anything, "").Return(nil, nil).Once()

	require.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/transactions", "", nil).Code)

	rec := f.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pumpdesk_http_requests_total{method="GET",route="/api/transactions",status="200"} 1`)
	assert.NotContains(t, rec.Body.String(), `route="/health"`)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/api/nowhere", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
