package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPinNotFound is returned when a cat location is not found.
	ErrPinNotFound = errors.New("pin not found")
	// ErrDuplicatePin is returned when a second pin is inserted for the same cat.
	ErrDuplicatePin = errors.New("pin already exists for cat")
	// ErrPinConditionChanged is returned when a guarded condition write finds a different condition.
	ErrPinConditionChanged = errors.New("pin condition changed")
)

// PinRepository defines persistence operations for cat locations.
type PinRepository interface {
	Create(ctx context.Context, pin *entity.CatLocation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CatLocation, error)
	FindByCatID(ctx context.Context, catID uuid.UUID) (*entity.CatLocation, error)

	// UpdateCoordinates moves an existing pin.
	UpdateCoordinates(ctx context.Context, id uuid.UUID, latitude, longitude float64) error

	// UpdateCondition sets the condition of a pin that is still in condition from.
	UpdateCondition(ctx context.Context, id uuid.UUID, from, to entity.Condition) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ListLatest returns up to limit pins joined with cat and contributor data, newest first.
	ListLatest(ctx context.Context, limit int) ([]*entity.PinView, error)
}
