package config

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultAPIKeyHeader is the header clients present their API key in when
// the configuration does not override it.
const DefaultAPIKeyHeader = "X-API-Key"

// AuthSettings holds settings for API-key verification and JWT sessions.
type AuthSettings struct {
	APIKeyHeader  string        `mapstructure:"api_key_header"`
	EncryptionKey string        `mapstructure:"encryption_key" validate:"required,base64"`
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,base64"`
	JWTExpiry     time.Duration `mapstructure:"jwt_expiry"`
	KeyCacheTTL   time.Duration `mapstructure:"key_cache_ttl"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	key, err := base64.StdEncoding.DecodeString(s.EncryptionKey)
	if err != nil {
		return fmt.Errorf("encryption key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("encryption key must decode to 32 bytes for AES-256, got %d", len(key))
	}

	return nil
}

// Header returns the configured API-key header name, falling back to the default.
func (s *AuthSettings) Header() string {
	if s.APIKeyHeader == "" {
		return DefaultAPIKeyHeader
	}
	return s.APIKeyHeader
}
