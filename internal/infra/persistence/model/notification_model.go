package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ActivityLogModel is the GORM-specific struct for the 'activity_logs' table.
type ActivityLogModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CatID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID              *uuid.UUID `gorm:"type:uuid;index"`
	ActivityType        string     `gorm:"type:varchar(50);not null"`
	ActivityDescription string     `gorm:"type:text;not null"`
	ActivityTime        time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
