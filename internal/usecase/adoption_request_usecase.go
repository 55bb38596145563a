package usecase

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput is an application against a listing.
type CreateRequestInput struct {
	ListingID         uuid.UUID              `json:"listing_id" validate:"required"`
	City              string                 `json:"city" validate:"required,max=100"`
	Age               int                    `json:"age" validate:"required,min=1,max=120"`
	FullName          string                 `json:"full_name" validate:"required,min=2,max=100"`
	ReasonForAdoption string                 `json:"reason_for_adoption" validate:"required"`
	LivingSituation   string                 `json:"living_situation" validate:"required"`
	ExperienceLevel   entity.ExperienceLevel `json:"experience_level" validate:"required,oneof='None' 'Minimal' 'Fairly experienced' 'Good with cats'"`
	HasOtherPets      bool                   `json:"has_other_pets"`
}

// AdoptionRequestUsecase defines the adoption request workflow.
type AdoptionRequestUsecase interface {
	CreateRequest(ctx context.Context, actorID uuid.UUID, input *CreateRequestInput) (*entity.AdoptionRequest, error)
	ListSent(ctx context.Context, actorID uuid.UUID) ([]*entity.AdoptionRequest, error)

	// ListSentAccepted discloses receiver contact details for accepted requests only.
	ListSentAccepted(ctx context.Context, actorID uuid.UUID) ([]*entity.AcceptedRequestContact, error)

	ListIncomingPending(ctx context.Context, actorID uuid.UUID) ([]*entity.IncomingRequestView, error)
	ListIncomingAll(ctx context.Context, actorID uuid.UUID) ([]*entity.IncomingRequestView, error)
	GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*entity.AdoptionRequest, error)

	// ApplyAction lets the receiver accept or reject a pending request.
	ApplyAction(ctx context.Context, actorID, requestID uuid.UUID, action entity.RequestStatus) (*entity.AdoptionRequest, error)

	DeleteRequest(ctx context.Context, actorID, requestID uuid.UUID) error
}
