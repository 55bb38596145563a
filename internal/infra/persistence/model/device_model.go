package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the user_devices table. Inactive rows keep their token
// until the client re-registers; deleted_at hides a device from the owner.
type UserDeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_devices_user_id"`
	FCMToken  string         `gorm:"column:fcm_token;type:varchar(255);not null"`
	DeviceID  string         `gorm:"type:varchar(255);not null"`
	Platform  string         `gorm:"type:varchar(50);not null"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_user_devices_deleted_at"`
}

func (UserDeviceModel) TableName() string { return "user_devices" }
