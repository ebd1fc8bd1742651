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

// pendingRepository implements the domain.PendingStudentRepository interface using GORM.
type pendingRepository struct {
	db *gorm.DB
}

// NewPendingRepository is the constructor for pendingRepository.
func NewPendingRepository(db *gorm.DB) repository.PendingStudentRepository {
	return &pendingRepository{db: db}
}

// FindByUsername retrieves a pending registration by username.
func (repo *pendingRepository) FindByUsername(ctx context.Context, username string) (*entity.PendingStudent, error) {
	var pendingM model.PendingStudentModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&pendingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending registration")
	}

	return toPendingDomain(&pendingM), nil
}

// Exists reports whether a pending registration with the username exists.
func (repo *pendingRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PendingStudentModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count pending registrations")
	}

	return count > 0, nil
}

// Create persists a new pending registration.
func (repo *pendingRepository) Create(ctx context.Context, pending *entity.PendingStudent) error {
	pendingM := fromPendingDomain(pending)

	if err := repo.db.WithContext(ctx).Create(pendingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already pending")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pending registration")
	}

	pending.CreatedAt = pendingM.CreatedAt

	return nil
}

// Delete removes the pending registration with the given username.
func (repo *pendingRepository) Delete(ctx context.Context, username string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.PendingStudentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pending registration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPendingNotFound
	}

	return nil
}

// toPendingDomain converts a GORM PendingStudentModel to a domain entity.
func toPendingDomain(data *model.PendingStudentModel) *entity.PendingStudent {
	if data == nil {
		return nil
	}

	return &entity.PendingStudent{
		Username:        data.Username,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Level:           data.Level,
		PasswordHash:    data.PasswordHash,
		Salt:            data.Salt,
		ConfirmationKey: data.ConfirmationKey,
		CreatedAt:       data.CreatedAt,
	}
}

// fromPendingDomain converts a domain entity to a GORM PendingStudentModel.
func fromPendingDomain(data *entity.PendingStudent) *model.PendingStudentModel {
	if data == nil {
		return nil
	}

	return &model.PendingStudentModel{
		Username:        data.Username,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Level:           data.Level,
		PasswordHash:    data.PasswordHash,
		Salt:            data.Salt,
		ConfirmationKey: data.ConfirmationKey,
	}
}
