// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stundenplan/internal/domain/entity"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/domain/repository"
	"stundenplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the domain.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByUsername retrieves a single student by their unique username.
func (repo *studentRepository) FindByUsername(ctx context.Context, username string) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&studentM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by username")
	}

	return toStudentDomain(&studentM), nil
}

// FindWithSubjects retrieves a student together with their chosen subjects.
func (repo *studentRepository) FindWithSubjects(ctx context.Context, username string) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).
		Preload("Subjects").
		Where("username = ?", username).
		First(&studentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student with subjects")
	}

	return toStudentDomain(&studentM), nil
}

// Exists reports whether a confirmed student with the username exists.
func (repo *studentRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count students")
	}

	return count > 0, nil
}

// Create persists a new student entity to the database.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrStudentCreationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// Update modifies an existing student entity in the database.
func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Save(studentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update student")
	}

	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// Delete removes the student with the given username.
func (repo *studentRepository) Delete(ctx context.Context, username string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.StudentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// ReplaceCourses swaps the student's course enrolment for the given course IDs.
func (repo *studentRepository) ReplaceCourses(ctx context.Context, username string, courseIDs []uint) error {
	courses := make([]*model.CourseModel, 0, len(courseIDs))
	for _, id := range courseIDs {
		courses = append(courses, &model.CourseModel{ID: id})
	}

	studentM := &model.StudentModel{Username: username}
	err := repo.db.WithContext(ctx).
		Model(studentM).
		Association("Courses").
		Replace(courses)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace student courses")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	var subjects []*entity.Subject
	for _, subjectM := range data.Subjects {
		subjects = append(subjects, toSubjectDomain(subjectM))
	}

	var courses []*entity.Course
	for _, courseM := range data.Courses {
		courses = append(courses, toCourseDomain(courseM))
	}

	return &entity.Student{
		Username:     data.Username,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Level:        data.Level,
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Admin:        data.Admin,
		Subjects:     subjects,
		Courses:      courses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain Student entity to a GORM StudentModel for persistence.
func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		Username:     data.Username,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Level:        data.Level,
		PasswordHash: data.PasswordHash,
		Salt:         data.Salt,
		Admin:        data.Admin,
	}
}
