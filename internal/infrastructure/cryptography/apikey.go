package cryptography

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

const apiKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// APIKeyLength is the number of random characters in a generated key,
// excluding the prefix.
const APIKeyLength = 64

// GenerateAPIKey produces a new random API key with the gateway prefix.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, APIKeyLength)
	max := big.NewInt(int64(len(apiKeyAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate api key: %w", err)
		}
		buf[i] = apiKeyAlphabet[n.Int64()]
	}
	return users.APIKeyPrefix + string(buf), nil
}

// HashAPIKey returns the hex-encoded SHA-256 digest stored for key lookup.
// Hashing rather than storing the key keeps database dumps useless to an
// attacker.
func HashAPIKey(apiKey string) string {
	digest := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(digest[:])
}
