// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"stundenplan/config"
	deliverycontext "stundenplan/internal/delivery/context"
	"stundenplan/internal/domain/entity"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/domain/repository"
	"stundenplan/internal/domain/service"
	"stundenplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager            repository.TransactionManager
	hasher               service.PasswordHasher
	mailer               service.ConfirmationMailer
	emailDomain          string
	confirmationRequired bool
	logger               *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	mailer service.ConfirmationMailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:            txManager,
		hasher:               hasher,
		mailer:               mailer,
		emailDomain:          cfg.Auth.EmailDomain,
		confirmationRequired: cfg.Auth.ConfirmationRequired,
		logger:               logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates and persists a new account. Uniqueness spans both the
// confirmed and the pending set, checked and persisted in one transaction.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (usecase.RegisterOutcome, error) {
	username := strings.TrimSpace(input.Username)
	if !strings.HasSuffix(username, srv.emailDomain) {
		return 0, domainerrors.ErrInvalidEmailDomain
	}

	var (
		outcome         usecase.RegisterOutcome
		confirmationKey string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()
		pendingRepo := repoFactory.PendingRepo()

		// 1. Username must be free among confirmed and pending accounts.
		taken, err := studentRepo.Exists(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to check confirmed usernames")
		}
		if !taken {
			taken, err = pendingRepo.Exists(ctx, username)
			if err != nil {
				return errors.Wrap(err, "failed to check pending usernames")
			}
		}
		if taken {
			return domainerrors.ErrUsernameTaken
		}

		// 2. Derive the credential.
		salt, err := srv.hasher.GenerateSalt()
		if err != nil {
			return errors.Wrap(err, "failed to generate salt")
		}
		hash := srv.hasher.Hash(input.Password, salt)

		// 3. Persist either a pending or an active account.
		if srv.confirmationRequired {
			pending := &entity.PendingStudent{
				Username:        username,
				FirstName:       input.FirstName,
				LastName:        input.LastName,
				Level:           input.Level,
				PasswordHash:    hash,
				Salt:            salt,
				ConfirmationKey: uuid.NewString(),
			}
			if err := pendingRepo.Create(ctx, pending); err != nil {
				return err
			}
			confirmationKey = pending.ConfirmationKey
			outcome = usecase.RegisterOutcomePending

			return nil
		}

		student := &entity.Student{
			Username:     username,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Level:        input.Level,
			PasswordHash: hash,
			Salt:         salt,
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			return err
		}
		outcome = usecase.RegisterOutcomeCreated

		return nil
	})
	if err != nil {
		return 0, err
	}

	// Mail dispatch happens after commit, out-of-band and best-effort: a
	// failed mail does not undo the registration.
	if outcome == usecase.RegisterOutcomePending {
		if mailErr := srv.mailer.SendConfirmation(username, confirmationKey); mailErr != nil {
			srv.log(ctx).Warn("Failed to send confirmation mail",
				slog.String("username", username), slog.Any("error", mailErr))
		}
	}

	srv.log(ctx).Info("Student registered",
		slog.String("username", username),
		slog.Bool("pendingConfirmation", outcome == usecase.RegisterOutcomePending))

	return outcome, nil
}

// Confirm promotes a pending registration into an active student account.
// The pending record and its key are consumed in the same transaction, so a
// confirmation key is single-use.
func (srv *accountService) Confirm(ctx context.Context, username, key string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()
		pendingRepo := repoFactory.PendingRepo()

		pending, err := pendingRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrPendingNotFound) {
				return domainerrors.ErrConfirmationNotFound
			}

			return errors.Wrap(err, "failed to find pending registration")
		}

		// Exact, case-sensitive match. A mismatch is reported the same way
		// as a missing record.
		if pending.ConfirmationKey != key {
			return domainerrors.ErrConfirmationNotFound
		}

		if err := studentRepo.Create(ctx, pending.Promote()); err != nil {
			return err
		}

		return pendingRepo.Delete(ctx, username)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Student confirmed", slog.String("username", username))

	return nil
}

// ChangePassword replaces the credential with a fresh salt and hash.
func (srv *accountService) ChangePassword(ctx context.Context, username, newPassword string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		student, err := studentRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return errors.Wrap(err, "failed to find student")
		}

		salt, err := srv.hasher.GenerateSalt()
		if err != nil {
			return errors.Wrap(err, "failed to generate salt")
		}
		student.Salt = salt
		student.PasswordHash = srv.hasher.Hash(newPassword, salt)

		return studentRepo.Update(ctx, student)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("username", username))

	return nil
}

// Delete removes the student account.
func (srv *accountService) Delete(ctx context.Context, username string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StudentRepo().Delete(ctx, username); err != nil {
			if errors.Is(err, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Student deleted", slog.String("username", username))

	return nil
}
