package models

import (
	"github.com/campaign/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
