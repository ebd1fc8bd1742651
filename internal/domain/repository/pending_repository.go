// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"stundenplan/internal/domain/entity"
)

// ErrPendingNotFound is returned when no registration awaits confirmation
// under the given username.
var ErrPendingNotFound = errors.New("pending registration not found")

// PendingStudentRepository manages registrations that still await email
// confirmation. Records here are short-lived: they are either promoted into
// students or deleted.
type PendingStudentRepository interface {
	// FindByUsername retrieves a pending registration by username.
	FindByUsername(ctx context.Context, username string) (*entity.PendingStudent, error)

	// Exists reports whether a pending registration with the username exists.
	Exists(ctx context.Context, username string) (bool, error)

	// Create persists a new pending registration.
	Create(ctx context.Context, pending *entity.PendingStudent) error

	// Delete removes the pending registration with the given username.
	Delete(ctx context.Context, username string) error
}
