package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCatNotFound is returned when a cat is not found.
var ErrCatNotFound = errors.New("cat not found")

// CatRepository defines persistence operations for cats.
type CatRepository interface {
	Create(ctx context.Context, cat *entity.Cat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cat, error)

	// FindByIDForUpdate loads the cat and holds its row lock until the
	// transaction ends. Pin and listing writes for one cat serialize on it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Cat, error)

	Update(ctx context.Context, cat *entity.Cat) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByAddingUser returns the cats a user contributed, newest first.
	FindByAddingUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cat, error)

	// FindUnlisted returns cats that have no adoption listing, newest first.
	FindUnlisted(ctx context.Context) ([]*entity.Cat, error)
}
