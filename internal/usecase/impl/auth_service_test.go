package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stundenplan/config"
	"stundenplan/internal/domain/entity"
	"stundenplan/internal/domain/service"
	"stundenplan/internal/infra/auth"
	"stundenplan/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Secret:   "test_secret_key_very_long_for_testing",
		Issuer:   "stundenplan",
		TokenTTL: 10 * time.Minute,
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

func seedStudent(t *testing.T, repo *fakeStudentRepo, hasher service.PasswordHasher, username, password string, admin bool) {
	t.Helper()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	repo.students[username] = &entity.Student{
		Username:     username,
		PasswordHash: hasher.Hash(password, salt),
		Salt:         salt,
		Admin:        admin,
	}
}

func TestLogin_Success(t *testing.T) {
	hasher := auth.NewSaltedHasher()
	tokenService := testTokenService(t)
	repo := newFakeStudentRepo()
	seedStudent(t, repo, hasher, "alice@gao-online.de", "secret", false)

	svc := NewAuthService(repo, hasher, tokenService, testLogger())

	token, err := svc.Login(context.Background(), usecase.LoginInput{
		Username: "alice@gao-online.de",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokenService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@gao-online.de", claims.Subject)
	assert.False(t, claims.Admin)
}

func TestLogin_AdminFlagCarriedIntoToken(t *testing.T) {
	hasher := auth.NewSaltedHasher()
	tokenService := testTokenService(t)
	repo := newFakeStudentRepo()
	seedStudent(t, repo, hasher, "admin@gao-online.de", "secret", true)

	svc := NewAuthService(repo, hasher, tokenService, testLogger())

	token, err := svc.Login(context.Background(), usecase.LoginInput{
		Username: "admin@gao-online.de",
		Password: "secret",
	})
	require.NoError(t, err)

	claims, err := tokenService.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestLogin_WrongPasswordYieldsEmptyToken(t *testing.T) {
	hasher := auth.NewSaltedHasher()
	repo := newFakeStudentRepo()
	seedStudent(t, repo, hasher, "alice@gao-online.de", "secret", false)

	svc := NewAuthService(repo, hasher, testTokenService(t), testLogger())

	token, err := svc.Login(context.Background(), usecase.LoginInput{
		Username: "alice@gao-online.de",
		Password: "wrong",
	})
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogin_UnknownUsernameYieldsEmptyToken(t *testing.T) {
	svc := NewAuthService(newFakeStudentRepo(), auth.NewSaltedHasher(), testTokenService(t), testLogger())

	token, err := svc.Login(context.Background(), usecase.LoginInput{
		Username: "nobody@gao-online.de",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogin_EmptyCredentialsYieldEmptyToken(t *testing.T) {
	svc := NewAuthService(newFakeStudentRepo(), auth.NewSaltedHasher(), testTokenService(t), testLogger())

	token, err := svc.Login(context.Background(), usecase.LoginInput{})
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogin_RepositoryFailurePropagates(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.failWith = assert.AnError

	svc := NewAuthService(repo, auth.NewSaltedHasher(), testTokenService(t), testLogger())

	_, err := svc.Login(context.Background(), usecase.LoginInput{
		Username: "alice@gao-online.de",
		Password: "secret",
	})
	assert.ErrorIs(t, err, assert.AnError)
}
