package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for portal users
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	FirstName      *string   `gorm:"type:varchar(100)"`
	LastName       *string   `gorm:"type:varchar(100)"`
	IsAdmin        bool      `gorm:"not null;default:false"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
