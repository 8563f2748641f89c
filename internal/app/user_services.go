package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/cryptography"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// userService implements users.UserService backed by the user store.
type userService struct {
	repo   users.UserRepository
	hasher users.PasswordHasher
	cipher users.APIKeyCipher
	tokens users.TokenIssuer
	cache  *apiKeyCache
	logger logger.Logger
}

// NewUserService creates the credential service. cacheTTL bounds how long a
// verified API key is served from memory before the store is consulted again.
func NewUserService(
	repo users.UserRepository,
	hasher users.PasswordHasher,
	cipher users.APIKeyCipher,
	tokens users.TokenIssuer,
	cacheTTL time.Duration,
	logger logger.Logger,
) (users.UserService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository must not be nil")
	}
	if hasher == nil || cipher == nil || tokens == nil {
		return nil, fmt.Errorf("hasher, cipher and token issuer must not be nil")
	}

	return &userService{
		repo:   repo,
		hasher: hasher,
		cipher: cipher,
		tokens: tokens,
		cache:  newAPIKeyCache(cacheTTL),
		logger: logger,
	}, nil
}

func (s *userService) Register(ctx context.Context, username, password string) (*users.User, string, error) {
	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	apiKey, err := cryptography.GenerateAPIKey()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate api key: %w", err)
	}

	encryptedKey, err := s.cipher.Encrypt([]byte(apiKey))
	if err != nil {
		return nil, "", fmt.Errorf("failed to encrypt api key: %w", err)
	}

	now := time.Now().UTC()
	user := &users.User{
		ID:              uuid.New().String(),
		Username:        username,
		PasswordHash:    passwordHash,
		APIKeyHash:      cryptography.HashAPIKey(apiKey),
		APIKeyEncrypted: encryptedKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	s.logger.Info("Registered user ", user.Username, " with id ", user.ID)
	return user, apiKey, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*users.Session, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("Rejected login for user ", username)
		return nil, users.ErrInvalidCredentials
	}

	session, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info("Issued session token for user ", username)
	return session, nil
}

func (s *userService) VerifyAPIKey(ctx context.Context, apiKey string) (*users.User, error) {
	if apiKey == "" {
		return nil, users.ErrInvalidCredentials
	}

	keyHash := cryptography.HashAPIKey(apiKey)
	if user, ok := s.cache.Get(keyHash); ok {
		return user, nil
	}

	user, err := s.repo.GetByAPIKeyHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	s.cache.Put(keyHash, user)
	return user, nil
}

func (s *userService) RotateAPIKey(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	apiKey, err := cryptography.GenerateAPIKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}

	encryptedKey, err := s.cipher.Encrypt([]byte(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt api key: %w", err)
	}

	oldHash := user.APIKeyHash
	user.APIKeyHash = cryptography.HashAPIKey(apiKey)
	user.APIKeyEncrypted = encryptedKey
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateByID(ctx, user); err != nil {
		return "", err
	}
	s.cache.Invalidate(oldHash)

	s.logger.Info("Rotated api key of user ", user.Username)
	return apiKey, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateByID(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Updated password of user ", user.Username)
	return nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, userID); err != nil {
		return err
	}
	s.cache.Invalidate(user.APIKeyHash)

	s.logger.Info("Deleted user ", user.Username)
	return nil
}
