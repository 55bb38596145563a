package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionListing offers a cat for adoption. A cat has at most one listing.
type AdoptionListing struct {
	ID         uuid.UUID `json:"id"`
	CatID      uuid.UUID `json:"cat_id"`
	UploaderID uuid.UUID `json:"uploader_id"`
	Vaccinated bool      `json:"vaccinated"`
	Sterilized bool      `json:"sterilized"`
	IsActive   bool      `json:"is_active"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Cat *Cat `json:"cat,omitempty"`
}

// IsUploadedBy reports whether userID created the listing.
func (l *AdoptionListing) IsUploadedBy(userID uuid.UUID) bool {
	return l != nil && l.UploaderID == userID
}
