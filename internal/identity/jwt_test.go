package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v := NewJWTVerifier("test-secret", time.Hour)

	token, err := v.Issue("user-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id.Subject)
	assert.Equal(t, "user@example.com", id.Email)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	issuer := NewJWTVerifier("secret-a", time.Hour)
	verifier := NewJWTVerifier("secret-b", time.Hour)

	token, err := issuer.Issue("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifier_Expired(t *testing.T) {
	v := NewJWTVerifier("test-secret", -time.Minute)

	token, err := v.Issue("user-123", "user@example.com")
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	v := NewJWTVerifier("test-secret", time.Hour)

	_, err := v.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
