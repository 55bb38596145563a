package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityLogRepository defines persistence operations for the per-cat activity trail.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error

	// FindByCat returns a cat's history, newest first.
	FindByCat(ctx context.Context, catID uuid.UUID) ([]*entity.ActivityLog, error)

	// FindByUser returns entries written by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityLog, error)
}
