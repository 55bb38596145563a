package usecase

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateListingInput defines the data required to list a cat for adoption.
type CreateListingInput struct {
	CatID      uuid.UUID `json:"cat_id" validate:"required"`
	Vaccinated bool      `json:"vaccinated"`
	Sterilized bool      `json:"sterilized"`
	Notes      string    `json:"notes" validate:"max=1000"`
}

// UpdateListingInput is a merge-patch of a listing.
type UpdateListingInput struct {
	Vaccinated *bool   `json:"vaccinated,omitempty"`
	Sterilized *bool   `json:"sterilized,omitempty"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// AdoptionListingUsecase defines adoption listing operations.
type AdoptionListingUsecase interface {
	CreateListing(ctx context.Context, actorID uuid.UUID, input *CreateListingInput) (*entity.AdoptionListing, error)
	ListListings(ctx context.Context) ([]*entity.AdoptionListing, error)
	UpdateListing(ctx context.Context, actorID, listingID uuid.UUID, input *UpdateListingInput) (*entity.AdoptionListing, error)
	DeleteListing(ctx context.Context, actorID, listingID uuid.UUID) error

	// GetListingQRCode renders a PNG share code for an existing listing.
	GetListingQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}
