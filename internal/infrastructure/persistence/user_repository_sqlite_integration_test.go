//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/pkg/config"
)

func newTestUser(username string) *users.User {
	return &users.User{
		ID:              uuid.New().String(),
		Username:        username,
		PasswordHash:    "$2a$12$examplehashexamplehashexamplehashexamplehash",
		APIKeyHash:      strings.Repeat("0a", 32),
		APIKeyEncrypted: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		CreatedAt:       time.Now().UTC(),
	}
}

func TestGormUserRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := newTestUser("ops-admin")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	byID, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	byName, err := tc.UserRepo.GetByUsername(ctx, "ops-admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byHash, err := tc.UserRepo.GetByAPIKeyHash(ctx, user.APIKeyHash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byHash.ID)
}

func TestGormUserRepository_DuplicateUsername(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	first := newTestUser("ops-admin")
	require.NoError(t, tc.UserRepo.Create(ctx, first))

	second := newTestUser("ops-admin")
	second.APIKeyHash = strings.Repeat("1b", 32)

	err := tc.UserRepo.Create(ctx, second)
	require.ErrorIs(t, err, users.ErrUsernameTaken)
}

func TestGormUserRepository_Update(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := newTestUser("ops-admin")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	user.APIKeyHash = strings.Repeat("2c", 32)
	user.UpdatedAt = time.Now().UTC()
	require.NoError(t, tc.UserRepo.UpdateByID(ctx, user))

	fetched, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("2c", 32), fetched.APIKeyHash)
}

func TestGormUserRepository_Delete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := newTestUser("ops-admin")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	require.NoError(t, tc.UserRepo.DeleteByID(ctx, user.ID))

	_, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, users.ErrUserNotFound)

	err = tc.UserRepo.DeleteByID(ctx, user.ID)
	require.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestGormUserRepository_RejectsInvalidEntity(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := newTestUser("ops-admin")
	user.ID = "not-a-uuid"

	require.Error(t, tc.UserRepo.Create(ctx, user))
}
