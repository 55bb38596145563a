package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push-target device persistence.
type DeviceRepository interface {
	// Create persists a new device for a user.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindByUserAndDeviceID retrieves a user's device by its client-side identifier.
	FindByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveByUser retrieves all active devices for a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the FCM token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateTokens marks the user's devices holding any of tokens inactive
	// and returns how many rows changed.
	DeactivateTokens(ctx context.Context, userID uuid.UUID, tokens []string) (int64, error)

	// Delete removes a device by its ID (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
