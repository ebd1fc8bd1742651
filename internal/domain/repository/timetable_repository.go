// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stundenplan/internal/domain/entity"
)

// TimetableRepository serves the read-mostly reference data of the
// timetable: subjects, courses, teachers, levels and cancellations.
type TimetableRepository interface {
	// ListSubjects returns every subject available for course selection.
	ListSubjects(ctx context.Context) ([]*entity.Subject, error)

	// ListCourses returns every course with subject and teacher resolved.
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// ListTeachers returns all teaching staff reference data.
	ListTeachers(ctx context.Context) ([]*entity.Teacher, error)

	// ListLevels returns all school levels.
	ListLevels(ctx context.Context) ([]*entity.Level, error)

	// ListCancellations returns all recorded lesson cancellations.
	ListCancellations(ctx context.Context) ([]*entity.Cancellation, error)
}
