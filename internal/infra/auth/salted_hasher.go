// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"stundenplan/internal/domain/service"
)

const (
	saltBytes      = 16
	hashIterations = 10_000
	hashKeyLength  = 32
)

// saltedHasher derives password hashes with PBKDF2-SHA256 over an explicit
// per-student salt. The salt lives in its own column next to the hash, so
// the derivation must be reproducible from the two stored values.
type saltedHasher struct{}

// NewSaltedHasher is the constructor for saltedHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSaltedHasher() service.PasswordHasher {
	return &saltedHasher{}
}

// GenerateSalt produces a fresh random salt, hex encoded.
func (h *saltedHasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	return hex.EncodeToString(salt), nil
}

// Hash derives the stored hash from a plaintext password and a salt.
func (h *saltedHasher) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha256.New)

	return hex.EncodeToString(key)
}

// Check reports whether password and salt reproduce the stored hash.
func (h *saltedHasher) Check(password, salt, hash string) bool {
	derived := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}
