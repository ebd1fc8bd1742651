// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// LoginInput defines the data required for a student to log in.
type LoginInput struct {
	Username string
	Password string
}

// AuthUsecase defines the interface for the authentication operation.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown username and wrong password both yield an EMPTY token with a
	// nil error: authentication failure is a value, not an error. A non-nil
	// error signals infrastructure failure only.
	Login(ctx context.Context, input LoginInput) (string, error)
}
