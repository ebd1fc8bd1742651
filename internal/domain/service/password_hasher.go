// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher derives and verifies salted password hashes. The salt is
// explicit because the credential store keeps hash and salt in separate
// per-student columns.
type PasswordHasher interface {
	// GenerateSalt produces a fresh random salt for a new credential.
	GenerateSalt() (string, error)

	// Hash derives the stored hash from a plaintext password and a salt.
	// The derivation is deterministic for a given (password, salt) pair.
	Hash(password, salt string) string

	// Check reports whether the password and salt reproduce the stored hash.
	Check(password, salt, hash string) bool
}
