package repository

import (
	"context"

	"catrescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrRequestNotFound is returned when an adoption request is not found.
	ErrRequestNotFound = errors.New("adoption request not found")
	// ErrDuplicateRequest is returned when a sender already applied to a listing.
	ErrDuplicateRequest = errors.New("adoption request already exists")
	// ErrRequestStatusChanged is returned when a guarded write finds the request
	// gone or no longer in the expected status.
	ErrRequestStatusChanged = errors.New("adoption request status changed")
)

// AdoptionRequestRepository defines persistence operations for adoption requests.
type AdoptionRequestRepository interface {
	Create(ctx context.Context, request *entity.AdoptionRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error)
	FindByListingAndSender(ctx context.Context, listingID, senderID uuid.UUID) (*entity.AdoptionRequest, error)

	// UpdateStatus moves the request from one status to another. It returns
	// ErrRequestStatusChanged when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error

	// DeletePending removes the request only while it is still pending.
	DeletePending(ctx context.Context, id uuid.UUID) error

	// FindBySender returns every request a user sent, newest first.
	FindBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.AdoptionRequest, error)

	// FindAcceptedContacts returns receiver contact details for the sender's accepted requests.
	FindAcceptedContacts(ctx context.Context, senderID uuid.UUID) ([]*entity.AcceptedRequestContact, error)

	// FindIncoming returns requests addressed to receiverID, newest first.
	// When status is non-empty only requests in that status are returned.
	FindIncoming(ctx context.Context, receiverID uuid.UUID, status entity.RequestStatus) ([]*entity.IncomingRequestView, error)
}
