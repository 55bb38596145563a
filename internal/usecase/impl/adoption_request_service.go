package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/infra/metrics"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	outcomeSubmitted = "submitted"
	outcomeWithdrawn = "withdrawn"
)

type adoptionRequestService struct {
	txManager  repository.TransactionManager
	dispatcher *notificationDispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewAdoptionRequestService creates a new adoption request service instance
func NewAdoptionRequestService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.AdoptionRequestUsecase {
	return &adoptionRequestService{
		txManager:  txManager,
		dispatcher: newNotificationDispatcher(publisher, m, logger),
		metrics:    m,
		logger:     logger,
	}
}

// CreateRequest submits an application against an active listing and notifies
// both parties.
func (srv *adoptionRequestService) CreateRequest(ctx context.Context, actorID uuid.UUID, input *usecase.CreateRequestInput) (*entity.AdoptionRequest, error) {
	srv.logger.Info("Creating adoption request", "listingID", input.ListingID, "userID", actorID)

	if !input.ExperienceLevel.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid experience level")
	}

	var (
		request *entity.AdoptionRequest
		outbox  notificationOutbox
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		// 1. Listing must exist and be open
		listing, err := repoFactory.ListingRepo().FindByID(ctx, input.ListingID)
		if err != nil {
			return wrapListingError(err, "failed to find listing")
		}
		if !listing.IsActive {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing is inactive")
		}

		cat, err := listingCat(ctx, repoFactory, listing)
		if err != nil {
			return err
		}

		// 2. Owners cannot apply for their own cat
		if cat.IsAddedBy(actorID) || listing.IsUploadedBy(actorID) {
			return errors.Wrap(domainerrors.ErrSelfAdoption, "sender owns the cat")
		}

		// 3. One request per listing and sender
		_, err = requestRepo.FindByListingAndSender(ctx, listing.ID, actorID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrRequestAlreadyExists, "request already exists")
		}
		if !errors.Is(err, repository.ErrRequestNotFound) {
			return errors.Wrap(err, "failed to check existing request")
		}

		sender, err := repoFactory.UserRepo().FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "sender not found")
			}

			return errors.Wrap(err, "failed to find sender")
		}

		created := &entity.AdoptionRequest{
			ListingID:  listing.ID,
			SenderID:   actorID,
			ReceiverID: listing.UploaderID,
			Status:     entity.RequestStatusPending,
			AdoptionApplication: entity.AdoptionApplication{
				City:              strings.TrimSpace(input.City),
				Age:               input.Age,
				FullName:          strings.TrimSpace(input.FullName),
				ReasonForAdoption: input.ReasonForAdoption,
				LivingSituation:   input.LivingSituation,
				ExperienceLevel:   input.ExperienceLevel,
				HasOtherPets:      input.HasOtherPets,
			},
		}
		if err := requestRepo.Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateRequest) {
				return errors.Wrap(domainerrors.ErrRequestAlreadyExists, "request already exists")
			}

			return errors.Wrap(err, "failed to create request")
		}

		// 4. Notify both parties
		notificationRepo := repoFactory.NotificationRepo()
		if err := outbox.add(ctx, notificationRepo, actorID,
			fmt.Sprintf("Your adoption request for %s has been submitted", cat.Name)); err != nil {
			return err
		}
		if err := outbox.add(ctx, notificationRepo, listing.UploaderID,
			fmt.Sprintf("New adoption request for %s from %s [REQUEST_ID:%s]", cat.Name, sender.DisplayName(), created.ID)); err != nil {
			return err
		}

		request = created

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create adoption request")
	}

	srv.metrics.IncrementAdoptionRequest(outcomeSubmitted)
	srv.dispatcher.dispatch(ctx, &outbox)

	return request, nil
}

// ListSent returns every request the actor submitted.
func (srv *adoptionRequestService) ListSent(ctx context.Context, actorID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	var requests []*entity.AdoptionRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RequestRepo().FindBySender(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find sent requests")
		}
		requests = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent requests")
	}

	return requests, nil
}

// ListSentAccepted returns receiver contact details for accepted requests.
func (srv *adoptionRequestService) ListSentAccepted(ctx context.Context, actorID uuid.UUID) ([]*entity.AcceptedRequestContact, error) {
	var contacts []*entity.AcceptedRequestContact

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RequestRepo().FindAcceptedContacts(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find accepted requests")
		}
		contacts = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list accepted requests")
	}

	return contacts, nil
}

// ListIncomingPending returns requests awaiting the actor's decision.
func (srv *adoptionRequestService) ListIncomingPending(ctx context.Context, actorID uuid.UUID) ([]*entity.IncomingRequestView, error) {
	return srv.listIncoming(ctx, actorID, entity.RequestStatusPending)
}

// ListIncomingAll returns every request addressed to the actor.
func (srv *adoptionRequestService) ListIncomingAll(ctx context.Context, actorID uuid.UUID) ([]*entity.IncomingRequestView, error) {
	return srv.listIncoming(ctx, actorID, "")
}

func (srv *adoptionRequestService) listIncoming(ctx context.Context, actorID uuid.UUID, status entity.RequestStatus) ([]*entity.IncomingRequestView, error) {
	var requests []*entity.IncomingRequestView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RequestRepo().FindIncoming(ctx, actorID, status)
		if err != nil {
			return errors.Wrap(err, "failed to find incoming requests")
		}
		requests = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming requests")
	}

	return requests, nil
}

// GetRequest returns a request visible to its sender or receiver.
func (srv *adoptionRequestService) GetRequest(ctx context.Context, actorID, requestID uuid.UUID) (*entity.AdoptionRequest, error) {
	var request *entity.AdoptionRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RequestRepo().FindByID(ctx, requestID)
		if err != nil {
			return wrapRequestError(err, "failed to find request")
		}
		if !found.IsParticipant(actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor is not a party to the request")
		}
		request = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get adoption request")
	}

	return request, nil
}

// ApplyAction records the receiver's decision on a pending request and
// notifies both parties. Re-applying the same decision changes nothing.
func (srv *adoptionRequestService) ApplyAction(ctx context.Context, actorID, requestID uuid.UUID, action entity.RequestStatus) (*entity.AdoptionRequest, error) {
	if !action.IsDecision() {
		return nil, errors.Wrap(domainerrors.ErrInvalidAction, string(action))
	}

	srv.logger.Info("Applying adoption request action", "requestID", requestID, "userID", actorID, "action", action)

	var (
		request *entity.AdoptionRequest
		outbox  notificationOutbox
		changed bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		// 1. Only the receiver sees the request here
		found, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			return wrapRequestError(err, "failed to find request")
		}
		if found.ReceiverID != actorID {
			return errors.Wrap(domainerrors.ErrRequestNotFound, "actor is not the receiver")
		}

		// 2. Decisions are final
		if found.Status != entity.RequestStatusPending {
			if found.Status == action {
				request = found

				return nil
			}

			return errors.Wrapf(domainerrors.ErrRequestAlreadyDecided, "request is %s", found.Status)
		}

		if err := requestRepo.UpdateStatus(ctx, found.ID, entity.RequestStatusPending, action); err != nil {
			if errors.Is(err, repository.ErrRequestStatusChanged) {
				return errors.Wrap(domainerrors.ErrRequestAlreadyDecided, "request decided concurrently")
			}

			return wrapRequestError(err, "failed to update request status")
		}
		found.Status = action

		// 3. Notify both parties
		listing, err := repoFactory.ListingRepo().FindByID(ctx, found.ListingID)
		if err != nil {
			return wrapListingError(err, "failed to find listing")
		}
		cat, err := listingCat(ctx, repoFactory, listing)
		if err != nil {
			return err
		}
		sender, err := repoFactory.UserRepo().FindByID(ctx, found.SenderID)
		if err != nil {
			return errors.Wrap(err, "failed to find sender")
		}

		senderMessage, receiverMessage := decisionMessages(action, cat.Name, sender.DisplayName())
		notificationRepo := repoFactory.NotificationRepo()
		if err := outbox.add(ctx, notificationRepo, found.SenderID, senderMessage); err != nil {
			return err
		}
		if err := outbox.add(ctx, notificationRepo, found.ReceiverID, receiverMessage); err != nil {
			return err
		}

		request = found
		changed = true

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to apply adoption request action")
	}

	if changed {
		srv.metrics.IncrementAdoptionRequest(strings.ToLower(string(action)))
		srv.dispatcher.dispatch(ctx, &outbox)
	}

	return request, nil
}

func decisionMessages(action entity.RequestStatus, catName, senderName string) (toSender, toReceiver string) {
	if action == entity.RequestStatusAccepted {
		return fmt.Sprintf("Your adoption request for %s has been accepted!", catName),
			fmt.Sprintf("You accepted the adoption request from %s for %s", senderName, catName)
	}

	return fmt.Sprintf("Your adoption request for %s was rejected", catName),
		fmt.Sprintf("You rejected the adoption request from %s for %s", senderName, catName)
}

// DeleteRequest withdraws a pending request. Either party may delete it.
func (srv *adoptionRequestService) DeleteRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	srv.logger.Info("Deleting adoption request", "requestID", requestID, "userID", actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()

		found, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			return wrapRequestError(err, "failed to find request")
		}
		if !found.IsParticipant(actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor is not a party to the request")
		}
		if found.Status != entity.RequestStatusPending {
			return errors.Wrapf(domainerrors.ErrRequestNotPending, "request is %s", found.Status)
		}

		if err := requestRepo.DeletePending(ctx, requestID); err != nil {
			if errors.Is(err, repository.ErrRequestStatusChanged) {
				return errors.Wrap(domainerrors.ErrRequestNotPending, "request decided concurrently")
			}

			return wrapRequestError(err, "failed to delete request")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete adoption request")
	}

	srv.metrics.IncrementAdoptionRequest(outcomeWithdrawn)

	return nil
}

// listingCat returns the listing's cat, loading it when it was not preloaded.
func listingCat(ctx context.Context, repoFactory repository.RepositoryFactory, listing *entity.AdoptionListing) (*entity.Cat, error) {
	if listing.Cat != nil {
		return listing.Cat, nil
	}

	cat, err := repoFactory.CatRepo().FindByID(ctx, listing.CatID)
	if err != nil {
		return nil, wrapCatError(err, "failed to find listed cat")
	}

	return cat, nil
}

func wrapRequestError(err error, message string) error {
	if errors.Is(err, repository.ErrRequestNotFound) {
		return errors.Wrap(domainerrors.ErrRequestNotFound, message)
	}

	return errors.Wrap(err, message)
}
