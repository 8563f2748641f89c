package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
	"github.com/jack0rich/BigdataServer/internal/infrastructure/persistence/models"
	"github.com/jack0rich/BigdataServer/internal/pkg/logger"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return users.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByAPIKeyHash(ctx context.Context, keyHash string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("api_key_hash = ?", keyHash).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&models.UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrUserNotFound
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

// isUniqueViolation detects duplicate-key errors across the postgres and
// sqlite drivers without importing either error type here.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
