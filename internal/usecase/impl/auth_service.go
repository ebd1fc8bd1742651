// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "stundenplan/internal/delivery/context"
	"stundenplan/internal/domain/repository"
	"stundenplan/internal/domain/service"
	"stundenplan/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	studentRepo repository.StudentRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	studentRepo repository.StudentRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		studentRepo: studentRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a bearer token. Authentication
// failure is reported as an empty token, never as an error: an absent user
// and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (string, error) {
	if input.Username == "" || input.Password == "" {
		return "", nil
	}

	student, err := srv.studentRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			srv.log(ctx).Debug("Login for unknown username", slog.String("username", input.Username))

			return "", nil
		}

		return "", errors.Wrap(err, "failed to look up student for login")
	}

	if !srv.hasher.Check(input.Password, student.Salt, student.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.String("username", input.Username))

		return "", nil
	}

	token, err := srv.tokenSvc.Issue(student.Username, student.Admin)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Student logged in", slog.String("username", student.Username), slog.Bool("admin", student.Admin))

	return token, nil
}
