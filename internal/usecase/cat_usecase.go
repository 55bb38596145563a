package usecase

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCatInput defines the data required to register a cat.
type CreateCatInput struct {
	Name   string        `json:"name" validate:"required,max=100"`
	Gender entity.Gender `json:"gender" validate:"omitempty,oneof=M F UNKNOWN"`
	Age    *int          `json:"age,omitempty" validate:"omitempty,min=0,max=40"`
	Notes  string        `json:"notes" validate:"max=1000"`
}

// UpdateCatInput is a merge-patch of a cat; nil fields are left untouched.
type UpdateCatInput struct {
	Name   *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender *entity.Gender `json:"gender,omitempty" validate:"omitempty,oneof=M F UNKNOWN"`
	Age    *int           `json:"age,omitempty" validate:"omitempty,min=0,max=40"`
	Notes  *string        `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// CatImageInput carries an uploaded picture.
type CatImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CatUsecase defines cat registry operations.
type CatUsecase interface {
	CreateCat(ctx context.Context, actorID uuid.UUID, input *CreateCatInput) (*entity.Cat, error)
	ListUnlistedCats(ctx context.Context) ([]*entity.Cat, error)
	ListMyCats(ctx context.Context, actorID uuid.UUID) ([]*entity.Cat, error)
	UpdateCat(ctx context.Context, actorID, catID uuid.UUID, input *UpdateCatInput) (*entity.Cat, error)
	DeleteCat(ctx context.Context, actorID, catID uuid.UUID) error
	UploadCatImage(ctx context.Context, actorID, catID uuid.UUID, input *CatImageInput) (*entity.Cat, error)
}
