package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw12345678")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// plaintext never equals the stored value
	assert.NotEqual(t, "pw12345678", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	assert.True(t, CheckPasswordHash("pw12345678", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
