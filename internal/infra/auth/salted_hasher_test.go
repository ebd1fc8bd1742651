package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaltedHasher_DeterministicForSalt(t *testing.T) {
	hasher := NewSaltedHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEmpty(t, salt)

	first := hasher.Hash("geheim123", salt)
	second := hasher.Hash("geheim123", salt)
	assert.Equal(t, first, second)
}

func TestSaltedHasher_DifferentSaltsDifferentHashes(t *testing.T) {
	hasher := NewSaltedHasher()

	saltA, err := hasher.GenerateSalt()
	require.NoError(t, err)
	saltB, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, saltA, saltB)

	assert.NotEqual(t, hasher.Hash("geheim123", saltA), hasher.Hash("geheim123", saltB))
}

func TestSaltedHasher_Check(t *testing.T) {
	hasher := NewSaltedHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash := hasher.Hash("geheim123", salt)

	assert.True(t, hasher.Check("geheim123", salt, hash))
	assert.False(t, hasher.Check("falsch", salt, hash))
	assert.False(t, hasher.Check("geheim123", "wrongsalt", hash))
}
