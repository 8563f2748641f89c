package cryptography

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// BcryptCost matches the rounds the credential store has always used.
const BcryptCost = 12

// bcryptHasher implements users.PasswordHasher.
type bcryptHasher struct{}

// NewBcryptHasher creates a PasswordHasher backed by bcrypt.
func NewBcryptHasher() users.PasswordHasher {
	return &bcryptHasher{}
}

// Hash derives a bcrypt hash from the password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
