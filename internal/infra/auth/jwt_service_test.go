package auth

import (
	"testing"
	"time"

	"stundenplan/config"
	"stundenplan/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Secret:   "test_secret_key_very_long_for_testing",
		Issuer:   "stundenplan",
		TokenTTL: 10 * time.Minute,
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue("a@gao-online.de", false)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@gao-online.de", claims.Subject)
	assert.False(t, claims.Admin)
	assert.Equal(t, "stundenplan", claims.Issuer)

	// Expiry must sit within the configured 10 minute window.
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_AdminClaim(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue("admin@gao-online.de", true)
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.IssueWithTTL("a@gao-online.de", false, -time.Minute)
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)

	claims, err = jwtService.Verify("")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_WrongKey(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Auth.Secret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.Issue("a@gao-online.de", false)
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
