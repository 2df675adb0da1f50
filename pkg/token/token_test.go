package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	signed, err := Issue(testSecret, userID, "Jane", "jane@x.com", "user", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Verify(testSecret, signed)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Jane", claims.Name)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_ExpiredToken(t *testing.T) {
	t.Parallel()

	signed, err := Issue(testSecret, uuid.NewString(), "Jane", "jane@x.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := Issue(testSecret, uuid.NewString(), "Jane", "jane@x.com", "user", time.Hour)
	require.NoError(t, err)

	_, err = Verify([]byte("other-secret"), signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	tests := []string{"", "not-a-token", "a.b.c"}
	for _, tokenString := range tests {
		_, err := Verify(testSecret, tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", tokenString)
	}
}
