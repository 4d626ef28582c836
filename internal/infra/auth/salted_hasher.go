// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"

	"pumpdesk/internal/domain/service"
	"pumpdesk/internal/errors"
)

// SaltBytes is the number of random bytes in a salt; the hex salt is twice as long.
const SaltBytes = 16

// saltedHasher implements PasswordHasher as hex(SHA-256(password || salt)).
// The salt is mixed in as its hex text, not the raw bytes.
type saltedHasher struct {
	random io.Reader
}

// NewSaltedHasher is the constructor for saltedHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSaltedHasher() service.PasswordHasher {
	return &saltedHasher{random: rand.Reader}
}

// Hash draws a fresh salt and returns the digest of password and salt.
func (h *saltedHasher) Hash(password string) (string, string, error) {
	buf := make([]byte, SaltBytes)
	if _, err := io.ReadFull(h.random, buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate password salt")
	}
	salt := hex.EncodeToString(buf)

	return h.HashWithSalt(password, salt), salt, nil
}

// HashWithSalt derives the digest for a known salt.
func (h *saltedHasher) HashWithSalt(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))

	return hex.EncodeToString(sum[:])
}

// Check recomputes the digest with the stored salt. The comparison is constant-time.
func (h *saltedHasher) Check(password, hash, salt string) bool {
	if hash == "" || salt == "" {
		return false
	}
	computed := h.HashWithSalt(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
