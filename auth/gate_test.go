package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPasswordPlain(t *testing.T) {
	gate := NewGate("hunter2", "", []byte("secret"), time.Hour)

	assert.True(t, gate.VerifyPassword("hunter2"))
	assert.False(t, gate.VerifyPassword("hunter3"))
	assert.False(t, gate.VerifyPassword(""))
}

func TestVerifyPasswordWithNoSecretConfigured(t *testing.T) {
	gate := NewGate("", "", []byte("secret"), time.Hour)

	// Nothing gets in when no password is configured at all
	assert.False(t, gate.VerifyPassword(""))
	assert.False(t, gate.VerifyPassword("anything"))
}

func TestVerifyPasswordBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	gate := NewGate("plain-is-ignored", string(hash), []byte("secret"), time.Hour)

	assert.True(t, gate.VerifyPassword("hunter2"))
	assert.False(t, gate.VerifyPassword("plain-is-ignored"))
}

func TestTokenRoundTrip(t *testing.T) {
	gate := NewGate("hunter2", "", []byte("secret"), time.Hour)

	token, err := gate.IssueToken(time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := gate.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Subject)
}

func TestParseTokenRejectsGarbageAndForeignSignatures(t *testing.T) {
	gate := NewGate("hunter2", "", []byte("secret"), time.Hour)

	_, err := gate.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherGate := NewGate("hunter2", "", []byte("other-secret"), time.Hour)
	token, err := otherGate.IssueToken(time.Now())
	require.NoError(t, err)

	_, err = gate.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	gate := NewGate("hunter2", "", []byte("secret"), time.Hour)

	token, err := gate.IssueToken(time.Now().Add(-2 * time.Hour))
	require.NoError(t, err)

	_, err = gate.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	gate := NewGate("hunter2", "", nil, time.Hour)

	_, err := gate.IssueToken(time.Now())
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestAdminPolicy(t *testing.T) {
	policy := NewAdminPolicy()

	assert.True(t, policy.Allows(&Session{Subject: "admin"}, CapabilityManageContent))
	assert.False(t, policy.Allows(&Session{Subject: "visitor"}, CapabilityManageContent))
	assert.False(t, policy.Allows(nil, CapabilityManageContent))
}
