// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stundenplan/internal/domain/entity"
)

// ErrStudentNotFound is a domain-specific error returned when a student is not found.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the standard operations for student persistence.
// The application layer will depend on this interface, not the concrete implementation.
type StudentRepository interface {
	// FindByUsername retrieves a single student by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Student, error)

	// FindWithSubjects retrieves a student together with their chosen subjects.
	FindWithSubjects(ctx context.Context, username string) (*entity.Student, error)

	// Exists reports whether a confirmed student with the username exists.
	Exists(ctx context.Context, username string) (bool, error)

	// Create persists a new student entity to the storage.
	Create(ctx context.Context, student *entity.Student) error

	// Update modifies an existing student entity in the storage.
	Update(ctx context.Context, student *entity.Student) error

	// Delete removes the student with the given username.
	Delete(ctx context.Context, username string) error

	// ReplaceCourses swaps the student's course enrolment for the given course IDs.
	ReplaceCourses(ctx context.Context, username string, courseIDs []uint) error
}
