package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherHashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	match, err := hasher.Verify("pw123", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasherSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("pw123")
	require.NoError(t, err)
	hash2, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Equal plaintexts never produce equal hashes
	assert.NotEqual(t, hash1, hash2)
}

func TestBcryptHasherEmptyInput(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.Error(t, err)

	_, err = hasher.Verify("", "hash")
	assert.Error(t, err)

	_, err = hasher.Verify("pw", "")
	assert.Error(t, err)
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	assert.Equal(t, DefaultHashCost, hasher.cost)
}
