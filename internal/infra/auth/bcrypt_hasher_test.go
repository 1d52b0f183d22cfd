package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// bcrypt salts every hash; identical inputs must not collide.
	assert.NotEqual(t, first, second)
}
