package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"pumpdesk/config"
	apimiddleware "pumpdesk/internal/delivery/api/middleware"
	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	mockUC "pumpdesk/internal/mocks/usecase"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const resetBody = `{"email":"admin@example.com","newPassword":"NewPass1"}`

type authHandlerFixture struct {
	echo         *echo.Echo
	credentialUC *mockUC.MockCredentialUsecase
	resetUC      *mockUC.MockPasswordResetUsecase
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	f := &authHandlerFixture{
		echo:         newTestEcho(),
		credentialUC: mockUC.NewMockCredentialUsecase(t),
		resetUC:      mockUC.NewMockPasswordResetUsecase(t),
	}

	cfg := &config.Config{Auth: &config.AuthConfig{BearerScheme: "Bearer", InternalToken: "internal-secret"}}
	h := NewAuthHandler(AuthHandlerParams{
		CredentialUC: f.credentialUC,
		ResetUC:      f.resetUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	bearer := apimiddleware.NewBearerMiddleware(cfg)
	guard := apimiddleware.NewAdminGuard(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	f.echo.POST("/reset-password", h.ConfirmReset, bearer.Extract)
	f.echo.POST("/admin/reset-password", h.RequestReset, guard.Authorize)
	f.echo.POST("/api/login", h.Login)

	return f
}

func TestAuthHandler_ConfirmReset_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.resetUC.EXPECT().
		ConfirmReset(mock.Anything, &usecase.ConfirmResetInput{
			Email:       "admin@example.com",
			NewPassword: "NewPass1",
			BearerToken: "session-token",
		}).
		Return(nil).
		Once()

	rec := doRequest(f.echo, http.MethodPost, "/reset-password", resetBody, map[string]string{
		echo.HeaderAuthorization: "Bearer session-token",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestAuthHandler_ConfirmReset_RejectsMissingOrMalformedBearer(t *testing.T) {
	headers := map[string]map[string]string{
		"missing header": nil,
		"wrong scheme":   {echo.HeaderAuthorization: "Basic session-token"},
		"empty token":    {echo.HeaderAuthorization: "Bearer   "},
		"scheme only":    {echo.HeaderAuthorization: "Bearer"},
	}

	for name, h := range headers {
		t.Run(name, func(t *testing.T) {
			f := newAuthHandlerFixture(t)

			rec := doRequest(f.echo, http.MethodPost, "/reset-password", resetBody, h)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, rec))
			f.resetUC.AssertNotCalled(t, "ConfirmReset", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_ConfirmReset_RejectsBadBodies(t *testing.T) {
	bodies := map[string]string{
		"malformed json":       `{"email":`,
		"missing email":        `{"newPassword":"NewPass1"}`,
		"missing new password": `{"email":"admin@example.com"}`,
		"invalid email":        `{"email":"not-an-email","newPassword":"NewPass1"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			f := newAuthHandlerFixture(t)

			rec := doRequest(f.echo, http.MethodPost, "/reset-password", body, map[string]string{
				echo.HeaderAuthorization: "Bearer session-token",
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_ConfirmReset_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown pump", domainerrors.ErrPumpNotFound, http.StatusNotFound, "PUMP_NOT_FOUND"},
		{"unknown account", domainerrors.ErrAccountNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"not pending", domainerrors.ErrResetNotPending, http.StatusBadRequest, "RESET_NOT_PENDING"},
		{"mismatch", domainerrors.ErrResetMismatch, http.StatusBadRequest, "RESET_PASSWORD_MISMATCH"},
		{"credential write", domainerrors.ErrCredentialUpdateFailed.WrapMessage("write failed"), http.StatusInternalServerError, "CREDENTIAL_UPDATE_FAILED"},
		{"status clear", domainerrors.ErrStatusClearFailed, http.StatusInternalServerError, "RESET_STATUS_CLEAR_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthHandlerFixture(t)
			f.resetUC.EXPECT().ConfirmReset(mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := doRequest(f.echo, http.MethodPost, "/reset-password", resetBody, map[string]string{
				echo.HeaderAuthorization: "Bearer session-token",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
		})
	}
}

func TestAuthHandler_RequestReset(t *testing.T) {
	t.Run("requires the internal token", func(t *testing.T) {
		f := newAuthHandlerFixture(t)

		rec := doRequest(f.echo, http.MethodPost, "/admin/reset-password", resetBody, map[string]string{
			apimiddleware.HeaderInternalToken: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.resetUC.AssertNotCalled(t, "RequestReset", mock.Anything, mock.Anything)
	})

	t.Run("stores the pending reset", func(t *testing.T) {
		f := newAuthHandlerFixture(t)
		f.resetUC.EXPECT().
			RequestReset(mock.Anything, &usecase.RequestResetInput{Email: "admin@example.com", NewPassword: "NewPass1"}).
			Return(nil).
			Once()

		rec := doRequest(f.echo, http.MethodPost, "/admin/reset-password", resetBody, map[string]string{
			apimiddleware.HeaderInternalToken: "internal-secret",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		f := newAuthHandlerFixture(t)
		f.resetUC.EXPECT().RequestReset(mock.Anything, mock.Anything).Return(domainerrors.ErrPasswordTooShort).Once()

		rec := doRequest(f.echo, http.MethodPost, "/admin/reset-password", `{"email":"admin@example.com","newPassword":"abc"}`, map[string]string{
			apimiddleware.HeaderInternalToken: "internal-secret",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PASSWORD_TOO_SHORT", decodeErrorCode(t, rec))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the profile", func(t *testing.T) {
		f := newAuthHandlerFixture(t)
		profile := &entity.AccountProfile{ID: uuid.New(), Username: "admin", Email: "admin@example.com", Role: entity.RoleAdmin}
		f.credentialUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Identifier: "admin", Password: "admin123"}).
			Return(profile, nil).
			Once()

		rec := doRequest(f.echo, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[entity.AccountProfile](t, rec)
		assert.Equal(t, profile.ID, got.ID)
		assert.Equal(t, "admin@example.com", got.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		f := newAuthHandlerFixture(t)
		f.credentialUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := doRequest(f.echo, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeErrorCode(t, rec))
	})
}
