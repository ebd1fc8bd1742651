// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"stundenplan/internal/domain/entity"
)

// StudentDataInput carries the editable profile fields of a student.
type StudentDataInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Level     string `json:"level"`
}

// TimetableUsecase defines the read and write operations around the
// timetable reference data and per-student selections.
type TimetableUsecase interface {
	// ListSubjects returns all subjects available for course selection.
	ListSubjects(ctx context.Context) ([]*entity.Subject, error)

	// ListCourses returns all courses with subject and teacher resolved.
	ListCourses(ctx context.Context) ([]*entity.Course, error)

	// ListTeachers returns all teaching staff.
	ListTeachers(ctx context.Context) ([]*entity.Teacher, error)

	// ListLevels returns all school levels.
	ListLevels(ctx context.Context) ([]*entity.Level, error)

	// ListCancellations returns all recorded lesson cancellations.
	ListCancellations(ctx context.Context) ([]*entity.Cancellation, error)

	// GetStudentWithSubjects returns the student and their chosen subjects.
	GetStudentWithSubjects(ctx context.Context, username string) (*entity.Student, error)

	// StoreStudentData updates the student's profile fields.
	StoreStudentData(ctx context.Context, username string, input StudentDataInput) error

	// StoreStudentCourses replaces the student's course enrolment.
	StoreStudentCourses(ctx context.Context, username string, courseIDs []uint) error
}
