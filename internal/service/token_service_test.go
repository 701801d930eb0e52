package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := &TokenService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("right-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("wrong-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestTokenService_EmptySecretRejected(t *testing.T) {
	_, err := NewTokenService("  ", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService("test-secret", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.ttl)
}
