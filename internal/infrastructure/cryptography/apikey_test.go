//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, users.APIKeyPrefix))
	assert.Len(t, key, len(users.APIKeyPrefix)+APIKeyLength)

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestHashAPIKey(t *testing.T) {
	hash := HashAPIKey("sk_example")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashAPIKey("sk_example"))
	assert.NotEqual(t, hash, HashAPIKey("sk_other"))
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}
