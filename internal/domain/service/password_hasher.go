// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and verification.
// Every Hash call draws a fresh salt; the caller persists hash and salt together.
type PasswordHasher interface {
	// Hash generates a new random salt and returns the digest of password and salt.
	Hash(password string) (hash, salt string, err error)

	// HashWithSalt derives the digest for a known salt.
	HashWithSalt(password, salt string) string

	// Check recomputes the digest with the stored salt and compares it to the stored hash.
	Check(password, hash, salt string) bool
}
