package usecase

import "context"

// RequestResetInput is issued by an administrator to propose a new password for a pump owner.
type RequestResetInput struct {
	Email       string
	NewPassword string
}

// ConfirmResetInput is sent by the pump owner to accept the proposed password.
type ConfirmResetInput struct {
	Email       string
	NewPassword string
	// BearerToken is only checked for presence.
	BearerToken string
}

// PasswordResetUsecase drives the out-of-band reset handshake. The only
// persisted handshake state is the status of the owner's fuel pump.
type PasswordResetUsecase interface {
	// RequestReset marks the pump registered under the email as pending_reset:<password>.
	RequestReset(ctx context.Context, input *RequestResetInput) error
	// ConfirmReset rotates the owner's credentials and returns the pump to active.
	ConfirmReset(ctx context.Context, input *ConfirmResetInput) error
}
