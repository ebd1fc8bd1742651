// Package usecase contains the application-specific business rules.
package usecase

import "context"

// RegisterInput defines the data required to register a new student account.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=1"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Level     string `json:"level"`
}

// RegisterOutcome distinguishes a directly created account from one that
// still awaits email confirmation.
type RegisterOutcome int

const (
	// RegisterOutcomeCreated means the account is active immediately.
	RegisterOutcomeCreated RegisterOutcome = iota

	// RegisterOutcomePending means a confirmation key was dispatched and the
	// account stays inactive until confirmed.
	RegisterOutcomePending
)

// AccountUsecase defines the interface for account lifecycle operations.
type AccountUsecase interface {
	// Register validates and persists a new account. Domain violations
	// surface as AppErrors (invalid email domain, username taken).
	Register(ctx context.Context, input RegisterInput) (RegisterOutcome, error)

	// Confirm promotes a pending registration whose key matches exactly.
	// A lookup miss and a key mismatch are indistinguishable to the caller.
	Confirm(ctx context.Context, username, key string) error

	// ChangePassword replaces the student's credential with a fresh salt.
	ChangePassword(ctx context.Context, username, newPassword string) error

	// Delete removes the student account.
	Delete(ctx context.Context, username string) error
}
