//go:build unit
// +build unit

package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/cryptography"
)

func newTestUserService(t *testing.T, repo users.UserRepository, cacheTTL time.Duration) users.UserService {
	t.Helper()

	rawKey := make([]byte, 32)
	_, err := rand.Read(rawKey)
	require.NoError(t, err)
	keyBase64 := base64.StdEncoding.EncodeToString(rawKey)

	cipher, err := cryptography.NewAESKeyCipher(keyBase64, testLogger())
	require.NoError(t, err)

	tokens, err := cryptography.NewJWTIssuer(keyBase64, time.Hour)
	require.NoError(t, err)

	service, err := NewUserService(repo, cryptography.NewBcryptHasher(), cipher, tokens, cacheTTL, testLogger())
	require.NoError(t, err)
	return service
}

func TestUserService_RegisterIssuesAPIKey(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	var created *users.User
	repo.
		On("Create", mock.Anything, mock.AnythingOfType("*users.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*users.User) }).
		Return(nil)

	user, apiKey, err := service.Register(context.Background(), "ops-admin", "correct-horse")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(apiKey, users.APIKeyPrefix))
	assert.Equal(t, cryptography.HashAPIKey(apiKey), user.APIKeyHash)
	assert.NotEmpty(t, user.APIKeyEncrypted)
	require.NotNil(t, created)
	assert.Equal(t, user.ID, created.ID)
}

func TestUserService_RegisterRejectsShortPassword(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	_, _, err := service.Register(context.Background(), "ops-admin", "short")
	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_LoginVerifiesPassword(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	hash, err := cryptography.NewBcryptHasher().Hash("correct-horse")
	require.NoError(t, err)

	user := &users.User{ID: uuid.New().String(), Username: "ops-admin", PasswordHash: hash}
	repo.On("GetByUsername", mock.Anything, "ops-admin").Return(user, nil)

	session, err := service.Login(context.Background(), "ops-admin", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)

	_, err = service.Login(context.Background(), "ops-admin", "wrong-password")
	require.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestUserService_LoginUnknownUser(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrUserNotFound)

	_, err := service.Login(context.Background(), "ghost", "correct-horse")
	require.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestUserService_VerifyAPIKeyCachesLookups(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	apiKey, err := cryptography.GenerateAPIKey()
	require.NoError(t, err)
	keyHash := cryptography.HashAPIKey(apiKey)

	user := &users.User{ID: uuid.New().String(), Username: "ops-admin", APIKeyHash: keyHash}
	repo.On("GetByAPIKeyHash", mock.Anything, keyHash).Return(user, nil).Once()

	ctx := context.Background()
	first, err := service.VerifyAPIKey(ctx, apiKey)
	require.NoError(t, err)

	second, err := service.VerifyAPIKey(ctx, apiKey)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	repo.AssertExpectations(t)
}

func TestUserService_VerifyAPIKeyRejectsUnknownKey(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	repo.On("GetByAPIKeyHash", mock.Anything, mock.Anything).Return(nil, users.ErrUserNotFound)

	_, err := service.VerifyAPIKey(context.Background(), "sk_unknown")
	require.ErrorIs(t, err, users.ErrInvalidCredentials)

	_, err = service.VerifyAPIKey(context.Background(), "")
	require.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestUserService_RotateAPIKeyInvalidatesCache(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	oldKey, err := cryptography.GenerateAPIKey()
	require.NoError(t, err)
	oldHash := cryptography.HashAPIKey(oldKey)

	user := &users.User{ID: uuid.New().String(), Username: "ops-admin", APIKeyHash: oldHash}
	repo.On("GetByAPIKeyHash", mock.Anything, oldHash).Return(user, nil).Once()
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("UpdateByID", mock.Anything, user).Return(nil)

	ctx := context.Background()
	_, err = service.VerifyAPIKey(ctx, oldKey)
	require.NoError(t, err)

	newKey, err := service.RotateAPIKey(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldKey, newKey)
	assert.Equal(t, cryptography.HashAPIKey(newKey), user.APIKeyHash)

	// The old key must miss the cache and hit the store again.
	repo.On("GetByAPIKeyHash", mock.Anything, oldHash).Return(nil, users.ErrUserNotFound).Once()
	_, err = service.VerifyAPIKey(ctx, oldKey)
	require.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestUserService_UpdatePassword(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	user := &users.User{ID: uuid.New().String(), Username: "ops-admin", PasswordHash: "old"}
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("UpdateByID", mock.Anything, user).Return(nil)

	require.NoError(t, service.UpdatePassword(context.Background(), user.ID, "new-correct-horse"))
	assert.NotEqual(t, "old", user.PasswordHash)

	require.Error(t, service.UpdatePassword(context.Background(), user.ID, "short"))
}

func TestUserService_DeleteByID(t *testing.T) {
	repo := &mockUserRepository{}
	service := newTestUserService(t, repo, time.Minute)

	user := &users.User{ID: uuid.New().String(), Username: "ops-admin", APIKeyHash: strings.Repeat("0a", 32)}
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("DeleteByID", mock.Anything, user.ID).Return(nil)

	require.NoError(t, service.DeleteByID(context.Background(), user.ID))
	repo.AssertExpectations(t)
}
