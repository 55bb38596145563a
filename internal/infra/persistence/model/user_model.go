package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username          string    `gorm:"type:varchar(150);unique;not null"`
	FullName          string    `gorm:"type:varchar(255)"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Phone             string    `gorm:"type:varchar(20);unique;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	ProfilePictureURL string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
