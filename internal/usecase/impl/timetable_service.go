// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "stundenplan/internal/delivery/context"
	"stundenplan/internal/domain/entity"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/domain/repository"
	"stundenplan/internal/usecase"

	"github.com/pkg/errors"
)

// timetableService implements the TimetableUsecase interface.
type timetableService struct {
	timetableRepo repository.TimetableRepository
	txManager     repository.TransactionManager
	logger        *slog.Logger
}

// NewTimetableService is the constructor for timetableService.
func NewTimetableService(
	timetableRepo repository.TimetableRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.TimetableUsecase {
	return &timetableService{
		timetableRepo: timetableRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *timetableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSubjects returns all subjects available for course selection.
func (srv *timetableService) ListSubjects(ctx context.Context) ([]*entity.Subject, error) {
	subjects, err := srv.timetableRepo.ListSubjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	return subjects, nil
}

// ListCourses returns all courses with subject and teacher resolved.
func (srv *timetableService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.timetableRepo.ListCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// ListTeachers returns all teaching staff.
func (srv *timetableService) ListTeachers(ctx context.Context) ([]*entity.Teacher, error) {
	teachers, err := srv.timetableRepo.ListTeachers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	return teachers, nil
}

// ListLevels returns all school levels.
func (srv *timetableService) ListLevels(ctx context.Context) ([]*entity.Level, error) {
	levels, err := srv.timetableRepo.ListLevels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	return levels, nil
}

// ListCancellations returns all recorded lesson cancellations.
func (srv *timetableService) ListCancellations(ctx context.Context) ([]*entity.Cancellation, error) {
	cancellations, err := srv.timetableRepo.ListCancellations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cancellations")
	}

	return cancellations, nil
}

// GetStudentWithSubjects returns the student and their chosen subjects.
func (srv *timetableService) GetStudentWithSubjects(ctx context.Context, username string) (*entity.Student, error) {
	var student *entity.Student

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StudentRepo().FindWithSubjects(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return errors.Wrap(err, "failed to find student with subjects")
		}
		student = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return student, nil
}

// StoreStudentData updates the student's profile fields.
func (srv *timetableService) StoreStudentData(ctx context.Context, username string, input usecase.StudentDataInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		student, err := studentRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return errors.Wrap(err, "failed to find student")
		}

		student.FirstName = input.FirstName
		student.LastName = input.LastName
		student.Level = input.Level

		return studentRepo.Update(ctx, student)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Student data stored", slog.String("username", username))

	return nil
}

// StoreStudentCourses replaces the student's course enrolment.
func (srv *timetableService) StoreStudentCourses(ctx context.Context, username string, courseIDs []uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		if _, err := studentRepo.FindByUsername(ctx, username); err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return errors.Wrap(err, "failed to find student")
		}

		return studentRepo.ReplaceCourses(ctx, username, courseIDs)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Student courses stored",
		slog.String("username", username), slog.Int("count", len(courseIDs)))

	return nil
}
