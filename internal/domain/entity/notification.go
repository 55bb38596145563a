package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification builds an unread notification for userID. The ID is assigned on insert.
func NewNotification(userID uuid.UUID, message string) *Notification {
	return &Notification{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
