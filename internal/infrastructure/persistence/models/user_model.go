// Package models contains the GORM persistence models for the credential store.
package models

import (
	"time"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// UserModel is the GORM representation of a gateway user.
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Username        string    `gorm:"uniqueIndex;not null"`
	PasswordHash    string    `gorm:"not null"`
	APIKeyHash      string    `gorm:"column:api_key_hash;uniqueIndex;not null"`
	APIKeyEncrypted []byte    `gorm:"column:api_key_encrypted;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}

// TableName keeps the table name the credential store has always used.
func (UserModel) TableName() string {
	return "users"
}

// FromDomain populates the model from a domain entity.
func (m *UserModel) FromDomain(user *users.User) {
	m.ID = user.ID
	m.Username = user.Username
	m.PasswordHash = user.PasswordHash
	m.APIKeyHash = user.APIKeyHash
	m.APIKeyEncrypted = user.APIKeyEncrypted
	m.CreatedAt = user.CreatedAt
	m.UpdatedAt = user.UpdatedAt
}

// ToDomain converts the model to a domain entity.
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Username:        m.Username,
		PasswordHash:    m.PasswordHash,
		APIKeyHash:      m.APIKeyHash,
		APIKeyEncrypted: m.APIKeyEncrypted,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
