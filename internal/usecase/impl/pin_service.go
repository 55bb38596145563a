package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"catrescue/internal/domain/constants"
	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/infra/metrics"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pinService struct {
	txManager repository.TransactionManager
	area      entity.ServiceArea
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewPinService creates a new pin service instance
func NewPinService(
	txManager repository.TransactionManager,
	area entity.ServiceArea,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.PinUsecase {
	return &pinService{
		txManager: txManager,
		area:      area,
		metrics:   m,
		logger:    logger,
	}
}

// ListPins returns the latest pins for the public map.
func (srv *pinService) ListPins(ctx context.Context) ([]*entity.PinView, error) {
	var pins []*entity.PinView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PinRepo().ListLatest(ctx, constants.PinFeedLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list pins")
		}
		pins = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list pins")
	}

	for _, pin := range pins {
		pin.Condition = pin.Condition.Display()
	}

	return pins, nil
}

// ReportPin places a cat on the map, moving its pin if one already exists.
func (srv *pinService) ReportPin(ctx context.Context, input *usecase.ReportPinInput) (*entity.CatLocation, error) {
	var pin *entity.CatLocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Cat must exist; its row lock serializes against listing writes
		if _, err := repoFactory.CatRepo().FindByIDForUpdate(ctx, input.CatID); err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		// 2. Listed cats are off the street
		listing, err := repoFactory.ListingRepo().FindByCatID(ctx, input.CatID)
		if err != nil && !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to find listing for cat")
		}
		if err == nil && listing.IsActive {
			return errors.Wrap(domainerrors.ErrCatListedForAdoption, "cat has an active listing")
		}

		// 3. Coordinates must fall inside the service area
		if !srv.area.Contains(input.Latitude, input.Longitude) {
			return errors.Wrap(domainerrors.ErrOutOfServiceArea, "pin outside service area")
		}

		// 4. Upsert by cat
		saved, err := upsertPin(ctx, repoFactory.PinRepo(), input)
		if err != nil {
			return err
		}
		pin = saved

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to report pin")
	}

	srv.metrics.IncrementPinsReported()
	srv.logger.Info("Pin reported", "pinID", pin.ID, "catID", pin.CatID)

	return pin, nil
}

func upsertPin(ctx context.Context, pinRepo repository.PinRepository, input *usecase.ReportPinInput) (*entity.CatLocation, error) {
	existing, err := pinRepo.FindByCatID(ctx, input.CatID)
	if err != nil && !errors.Is(err, repository.ErrPinNotFound) {
		return nil, errors.Wrap(err, "failed to find pin for cat")
	}

	if err == nil {
		if err := pinRepo.UpdateCoordinates(ctx, existing.ID, input.Latitude, input.Longitude); err != nil {
			return nil, wrapPinError(err, "failed to move pin")
		}
		existing.Latitude = input.Latitude
		existing.Longitude = input.Longitude

		return existing, nil
	}

	pin := &entity.CatLocation{
		CatID:     input.CatID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Condition: entity.ConditionUnknown,
	}
	if err := pinRepo.Create(ctx, pin); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePin):
			return nil, errors.Wrap(domainerrors.ErrConflict, "pin was created concurrently")
		case errors.Is(err, repository.ErrCatNotFound):
			return nil, errors.Wrap(domainerrors.ErrCatNotFound, "cat removed while pinning")
		default:
			return nil, errors.Wrap(err, "failed to create pin")
		}
	}

	return pin, nil
}

// UpdateCondition moves a pin through the condition state machine and writes
// the matching activity entry in the same transaction.
func (srv *pinService) UpdateCondition(ctx context.Context, actorID, pinID uuid.UUID, input *usecase.UpdateConditionInput) (*entity.CatLocation, error) {
	next := entity.Condition(strings.ToUpper(strings.TrimSpace(string(input.Condition))))

	srv.logger.Info("Updating pin condition", "pinID", pinID, "userID", actorID, "condition", next)

	var (
		pin     *entity.CatLocation
		changed bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pinRepo := repoFactory.PinRepo()

		// 1. Load pin and cat
		found, err := pinRepo.FindByID(ctx, pinID)
		if err != nil {
			return wrapPinError(err, "failed to find pin")
		}
		cat, err := repoFactory.CatRepo().FindByID(ctx, found.CatID)
		if err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		// 2. Only known conditions, terminal ones reserved for the contributor
		if !next.IsValid() {
			return errors.Wrap(domainerrors.ErrInvalidCondition, string(input.Condition))
		}
		if next.RequiresOwner() && !cat.IsAddedBy(actorID) {
			return errors.Wrap(domainerrors.ErrNotCatOwner, "only the adding user can set a terminal condition")
		}

		// 3. Terminal conditions are final
		if !found.Condition.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "%s to %s", found.Condition, next)
		}
		if found.Condition == next && next.IsTerminal() {
			pin = found

			return nil
		}

		// 4. Persist and log
		if err := pinRepo.UpdateCondition(ctx, found.ID, found.Condition, next); err != nil {
			if errors.Is(err, repository.ErrPinConditionChanged) {
				return errors.Wrap(domainerrors.ErrConflict, "condition changed concurrently")
			}

			return wrapPinError(err, "failed to update condition")
		}
		found.Condition = next

		if entry := conditionActivity(cat.ID, actorID, next, input.Description); entry != nil {
			if err := repoFactory.ActivityRepo().Create(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to record condition change")
			}
		}

		pin = found
		changed = true

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update pin condition")
	}

	if changed {
		srv.metrics.IncrementConditionChange(string(next))
	}

	return pin, nil
}

// conditionActivity returns the log entry a condition change produces, if any.
func conditionActivity(catID, actorID uuid.UUID, next entity.Condition, description string) *entity.ActivityLog {
	description = strings.TrimSpace(description)

	switch next {
	case entity.ConditionAdopted, entity.ConditionPassed:
		return entity.NewActivityLog(catID, &actorID, entity.ActivityTypeForCondition(next),
			fmt.Sprintf("Cat marked as %s", next))
	case entity.ConditionUrgent, entity.ConditionAtVet:
		if description == "" {
			return nil
		}

		return entity.NewActivityLog(catID, &actorID, entity.ActivityTypeForCondition(next),
			fmt.Sprintf("Condition changed to %s: %s", next, description))
	default:
		return nil
	}
}

// DeletePin removes a pin. Only the cat's contributor may do so.
func (srv *pinService) DeletePin(ctx context.Context, actorID, pinID uuid.UUID) error {
	srv.logger.Info("Deleting pin", "pinID", pinID, "userID", actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pinRepo := repoFactory.PinRepo()

		pin, err := pinRepo.FindByID(ctx, pinID)
		if err != nil {
			return wrapPinError(err, "failed to find pin")
		}

		cat, err := repoFactory.CatRepo().FindByID(ctx, pin.CatID)
		if err != nil {
			return wrapCatError(err, "failed to find cat")
		}
		if !cat.IsAddedBy(actorID) {
			return errors.Wrap(domainerrors.ErrNotCatOwner, "only the adding user can remove the pin")
		}

		if err := pinRepo.Delete(ctx, pinID); err != nil {
			return wrapPinError(err, "failed to delete pin")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete pin")
	}

	return nil
}

func wrapPinError(err error, message string) error {
	if errors.Is(err, repository.ErrPinNotFound) {
		return errors.Wrap(domainerrors.ErrPinNotFound, message)
	}

	return errors.Wrap(err, message)
}
