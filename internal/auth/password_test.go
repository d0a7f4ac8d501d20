package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Argon2Params {
	// Small memory footprint keeps the suite fast; the encoded hash is
	// self-describing so verification still works.
	return Argon2Params{MemoryKiB: 1024, Iterations: 1, Parallelism: 1}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", testParams())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong horse battery staple", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("hunter22", testParams())
	require.NoError(t, err)
	second, err := HashPassword("hunter22", testParams())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("hunter22", first))
	assert.True(t, VerifyPassword("hunter22", second))
}

func TestHashPassword_RejectsEmptyInput(t *testing.T) {
	_, err := HashPassword("", testParams())
	assert.Error(t, err)
}

func TestHashPassword_RejectsOversizedInput(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", maxPasswordBytes+1), testParams())
	assert.Error(t, err)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not a hash at all",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
	}
	for _, encoded := range cases {
		assert.False(t, VerifyPassword("whatever", encoded), "encoded=%q", encoded)
	}
}

func TestVerifyPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("secret-password", testParams())
	require.NoError(t, err)
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPassword_ZeroParamsFallBackToDefaults(t *testing.T) {
	hash, err := HashPassword("secret-password", Argon2Params{})
	require.NoError(t, err)
	assert.Contains(t, hash, "m=65536")
	assert.True(t, VerifyPassword("secret-password", hash))
}
