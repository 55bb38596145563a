package usecase

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// AddContributionInput is a free-text community update about a cat.
type AddContributionInput struct {
	CatID       uuid.UUID `json:"cat_id" validate:"required"`
	Description string    `json:"activity_description" validate:"required,max=1000"`
}

// ActivityUsecase defines the per-cat activity trail operations.
type ActivityUsecase interface {
	ListMyActivity(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityLog, error)

	// ListCatActivity is restricted to the uploader while the cat is listed.
	ListCatActivity(ctx context.Context, actorID, catID uuid.UUID) ([]*entity.ActivityLog, error)

	ListPublicCatActivity(ctx context.Context, catID uuid.UUID) ([]*entity.ActivityLog, error)
	AddContribution(ctx context.Context, actorID uuid.UUID, input *AddContributionInput) (*entity.ActivityLog, error)
}
