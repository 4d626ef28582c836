package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PumpStatusActive is the resting status of a fuel pump.
const PumpStatusActive = "active"

// PendingResetPrefix marks a status that carries an administrator-issued password.
// The plaintext after the prefix is what the pump owner must confirm.
const PendingResetPrefix = "pending_reset:"

// FuelPump is a fuel station registered in the system. It is correlated with its
// owner Account by email only; there is no foreign key between the two.
type FuelPump struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact_number"`
	Status    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PendingResetStatus encodes a proposed password into a pump status.
func PendingResetStatus(password string) string {
	return PendingResetPrefix + password
}

// PendingPassword returns the plaintext carried by a pending reset status.
func (p *FuelPump) PendingPassword() (string, bool) {
	return strings.CutPrefix(p.Status, PendingResetPrefix)
}

// IsPendingReset reports whether the pump is awaiting a password confirmation.
func (p *FuelPump) IsPendingReset() bool {
	return strings.HasPrefix(p.Status, PendingResetPrefix)
}

// PublicStatus hides the pending plaintext from API consumers.
func (p *FuelPump) PublicStatus() string {
	if p.IsPendingReset() {
		return "pending_reset"
	}

	return p.Status
}
