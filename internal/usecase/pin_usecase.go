package usecase

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportPinInput places or moves the street pin of a cat.
type ReportPinInput struct {
	CatID     uuid.UUID `json:"cat_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64   `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateConditionInput changes the condition flag of a pin.
type UpdateConditionInput struct {
	Condition   entity.Condition `json:"condition" validate:"required"`
	Description string           `json:"description,omitempty" validate:"max=1000"`
}

// PinUsecase defines the map pin and condition operations.
type PinUsecase interface {
	// ListPins returns the latest pins, newest first, with display conditions.
	ListPins(ctx context.Context) ([]*entity.PinView, error)

	// ReportPin creates the cat's pin or moves the existing one.
	ReportPin(ctx context.Context, input *ReportPinInput) (*entity.CatLocation, error)

	// UpdateCondition runs the condition state machine and records the change.
	UpdateCondition(ctx context.Context, actorID, pinID uuid.UUID, input *UpdateConditionInput) (*entity.CatLocation, error)

	DeletePin(ctx context.Context, actorID, pinID uuid.UUID) error
}
