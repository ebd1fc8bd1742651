// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stundenplan/config"
	"stundenplan/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It is constructed once at startup and holds the immutable signing context
// shared by token issuance and the request gate.
type jwtService struct {
	secret []byte        // Key for signing and verifying tokens.
	issuer string        // Issuer label stamped into every token.
	ttl    time.Duration // Default time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Secret),
		issuer: cfg.Auth.Issuer,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed token for the subject using the default TTL.
func (s *jwtService) Issue(subject string, admin bool) (string, error) {
	return s.IssueWithTTL(subject, admin, s.ttl)
}

// IssueWithTTL creates a signed token with an explicit lifetime. The payload
// carries the subject, the admin flag, the issuer label and the expiry.
func (s *jwtService) IssueWithTTL(subject string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,            // Subject (who the token is for)
		"admin": admin,              // Admin tokens bypass the ownership check
		"iss":   s.issuer,           // Issuer label
		"iat":   now.Unix(),         // Issued At
		"exp":   now.Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the signature and validity window of a token string and
// returns the decoded claims. Failures collapse into the two domain error
// classes the request gate distinguishes.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, service.ErrTokenMalformed
		}

		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, service.ErrTokenInvalid
	}
	admin, _ := claims["admin"].(bool)
	issuer, _ := claims["iss"].(string)

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, service.ErrTokenInvalid
	}

	return &service.Claims{
		Subject:   subject,
		Admin:     admin,
		Issuer:    issuer,
		ExpiresAt: expiry.Time,
	}, nil
}

// TTL returns the configured default token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
