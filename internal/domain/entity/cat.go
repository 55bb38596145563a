package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the recorded sex of a cat.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = "UNKNOWN"
)

// IsValid reports whether g is one of the recognized genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	default:
		return false
	}
}

// Cat is a rescued animal tracked by the community.
type Cat struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Gender       Gender     `json:"gender"`
	Age          *int       `json:"age,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	AddingUserID *uuid.UUID `json:"adding_user_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAddedBy reports whether userID is the contributor who added the cat.
func (c *Cat) IsAddedBy(userID uuid.UUID) bool {
	return c != nil && c.AddingUserID != nil && *c.AddingUserID == userID
}
