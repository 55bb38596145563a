package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrListingNotFound is returned when an adoption listing is not found.
	ErrListingNotFound = errors.New("adoption listing not found")
	// ErrDuplicateListing is returned when a cat already has a listing.
	ErrDuplicateListing = errors.New("adoption listing already exists for cat")
)

// AdoptionListingRepository defines persistence operations for adoption listings.
type AdoptionListingRepository interface {
	Create(ctx context.Context, listing *entity.AdoptionListing) error

	// FindByID returns the listing with its cat loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionListing, error)

	FindByCatID(ctx context.Context, catID uuid.UUID) (*entity.AdoptionListing, error)

	// FindAll returns every listing with its cat loaded, newest first.
	FindAll(ctx context.Context) ([]*entity.AdoptionListing, error)

	Update(ctx context.Context, listing *entity.AdoptionListing) error
	Delete(ctx context.Context, id uuid.UUID) error
}
