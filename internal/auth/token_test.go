package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)

	token, err := tm.Issue("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Subject)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), token.ExpiresAt, 2*time.Second)

	subject, err := tm.Parse(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenManager_TTLCapped(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)

	token, err := tm.IssueFor("alice", 24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), token.ExpiresAt, 2*time.Second)

	shorter, err := tm.IssueFor("alice", time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), shorter.ExpiresAt, 2*time.Second)
}

func TestTokenManager_ExpiryWindow(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tm := NewTokenManager("test-secret", 15*time.Minute).WithClock(func() time.Time { return issued })

	token, err := tm.Issue("alice")
	require.NoError(t, err)

	// Still valid one minute before the deadline.
	subject, err := tm.WithClock(func() time.Time { return issued.Add(14 * time.Minute) }).Parse(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// Expired one minute after.
	_, err = tm.WithClock(func() time.Time { return issued.Add(16 * time.Minute) }).Parse(token.Value)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", 15*time.Minute)
	verifier := NewTokenManager("other-secret", 15*time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token.Value)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tm.Parse(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "raw=%q", raw)
	}
}
