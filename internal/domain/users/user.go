package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// APIKeyPrefix marks every API key issued by the gateway.
const APIKeyPrefix = "sk_"

// User entity backing the gateway's credential store. The API key is kept
// twice: a SHA-256 hash for lookup during request authentication and an
// AES-GCM ciphertext so an operator can recover the key via the CLI.
type User struct {
	ID              string    `validate:"required,uuid4"`
	Username        string    `validate:"required,min=3,max=64"`
	PasswordHash    string    `validate:"required"`
	APIKeyHash      string    `validate:"required,len=64,hexadecimal"`
	APIKeyEncrypted []byte    `validate:"required"`
	CreatedAt       time.Time `validate:"required"`
	UpdatedAt       time.Time
}

// Validate for validating the User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	Username  string
}
