package users

import "context"

// UserService defines the gateway-facing credential operations.
type UserService interface {
	// Register creates a user and issues an API key. The plaintext key is
	// returned exactly once.
	Register(ctx context.Context, username, password string) (*User, string, error)

	// Login verifies a password and returns a signed session token.
	Login(ctx context.Context, username, password string) (*Session, error)

	// VerifyAPIKey resolves an API key to its owning user. Results are
	// cached for a configurable TTL.
	VerifyAPIKey(ctx context.Context, apiKey string) (*User, error)

	// RotateAPIKey replaces a user's API key and returns the new plaintext
	// key exactly once.
	RotateAPIKey(ctx context.Context, userID string) (string, error)

	// UpdatePassword replaces a user's password hash.
	UpdatePassword(ctx context.Context, userID, newPassword string) error

	// GetByID fetches a user by ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// DeleteByID removes a user and invalidates its cached API key.
	DeleteByID(ctx context.Context, userID string) error
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByUsername retrieves a User from the database by username
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByAPIKeyHash retrieves a User from the database by API-key hash
	GetByAPIKeyHash(ctx context.Context, keyHash string) (*User, error)
	// UpdateByID updates a User in the database by ID
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User in the database by ID
	DeleteByID(ctx context.Context, userID string) error
}

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// APIKeyCipher encrypts API keys at rest and decrypts them for recovery.
type APIKeyCipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(userID, username string) (*Session, error)
	Verify(token string) (*Session, error)
}
