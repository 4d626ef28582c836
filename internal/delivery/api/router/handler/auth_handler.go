// Package handler contains the Echo handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	"pumpdesk/internal/delivery/api/response"
	deliverycontext "pumpdesk/internal/delivery/context"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
	ResetUC      usecase.PasswordResetUsecase
	Logger       *slog.Logger
}

// AuthHandler serves login and the password reset handshake.
type AuthHandler struct {
	credentialUC usecase.CredentialUsecase
	resetUC      usecase.PasswordResetUsecase
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		credentialUC: params.CredentialUC,
		resetUC:      params.ResetUC,
		logger:       params.Logger,
	}
}

// ResetPasswordRequest is the body of both reset endpoints.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// LoginRequest accepts a username or an email as the identifier.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ConfirmReset completes a pending reset for the caller holding a bearer credential.
func (h *AuthHandler) ConfirmReset(c echo.Context) error {
	ctx := c.Request().Context()

	token := deliverycontext.GetBearerToken(ctx)
	if token == "" {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	err := h.resetUC.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
		BearerToken: token,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Ack(c)
}

// RequestReset puts a proposed password on the fuel pump of the given email.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	err := h.resetUC.RequestReset(c.Request().Context(), &usecase.RequestResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Ack(c)
}

// Login verifies a password and returns the account profile.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.credentialUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
