// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"errors"
	"time"
)

// Verification failures split into two classes so the request gate can map
// them to distinct HTTP statuses: a structurally broken token is the
// caller's fault (401), a failed signature or expiry is a rejection (403).
var (
	// ErrTokenMalformed reports a token that is not structurally a signed token.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenInvalid reports a token whose signature or validity window failed.
	ErrTokenInvalid = errors.New("token invalid or expired")
)

// Claims carries the verified payload of a bearer token.
type Claims struct {
	Subject   string    // Username the token was issued for.
	Admin     bool      // Admin tokens bypass the ownership check.
	Issuer    string    // Issuer label stamped at signing time.
	ExpiresAt time.Time // Hard validity bound, tokens are not renewable.
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Issuer label, signing secret and default lifetime form an immutable
// signing context fixed at construction, shared by issuer and verifier.
type TokenService interface {
	// Issue creates a signed token for the subject with the default TTL.
	Issue(subject string, admin bool) (string, error)

	// IssueWithTTL creates a signed token with an explicit lifetime.
	IssueWithTTL(subject string, admin bool, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	// It returns ErrTokenMalformed or ErrTokenInvalid on failure.
	Verify(token string) (*Claims, error)

	// TTL returns the configured default token lifetime.
	TTL() time.Duration
}
