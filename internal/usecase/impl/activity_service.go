package impl

import (
	"context"
	"log/slog"
	"strings"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type activityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ActivityUsecase {
	return &activityService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListMyActivity returns entries the actor wrote.
func (srv *activityService) ListMyActivity(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityLog, error) {
	var logs []*entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ActivityRepo().FindByUser(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find user activity")
		}
		logs = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user activity")
	}

	return logs, nil
}

// ListCatActivity returns a cat's history. While the cat is listed only the
// uploader may read it.
func (srv *activityService) ListCatActivity(ctx context.Context, actorID, catID uuid.UUID) ([]*entity.ActivityLog, error) {
	var logs []*entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CatRepo().FindByID(ctx, catID); err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		listing, err := repoFactory.ListingRepo().FindByCatID(ctx, catID)
		if err != nil && !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to find listing for cat")
		}
		if err == nil && !listing.IsUploadedBy(actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "cat is listed for adoption")
		}

		found, err := repoFactory.ActivityRepo().FindByCat(ctx, catID)
		if err != nil {
			return errors.Wrap(err, "failed to find cat activity")
		}
		logs = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list cat activity")
	}

	return logs, nil
}

// ListPublicCatActivity returns a cat's history without access checks.
func (srv *activityService) ListPublicCatActivity(ctx context.Context, catID uuid.UUID) ([]*entity.ActivityLog, error) {
	var logs []*entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CatRepo().FindByID(ctx, catID); err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		found, err := repoFactory.ActivityRepo().FindByCat(ctx, catID)
		if err != nil {
			return errors.Wrap(err, "failed to find cat activity")
		}
		logs = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list public cat activity")
	}

	return logs, nil
}

// AddContribution appends a community update unless the cat's condition closes contributions.
func (srv *activityService) AddContribution(ctx context.Context, actorID uuid.UUID, input *usecase.AddContributionInput) (*entity.ActivityLog, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "activity description is required")
	}

	var entry *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CatRepo().FindByID(ctx, input.CatID); err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		pin, err := repoFactory.PinRepo().FindByCatID(ctx, input.CatID)
		if err != nil && !errors.Is(err, repository.ErrPinNotFound) {
			return errors.Wrap(err, "failed to find pin for cat")
		}
		if err == nil && pin.Condition.BlocksContribution() {
			return errors.Wrapf(domainerrors.ErrContributionBlocked, "cat is %s", pin.Condition)
		}

		created := entity.NewActivityLog(input.CatID, &actorID, entity.ActivityContribution, description)
		if err := repoFactory.ActivityRepo().Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrCatNotFound) {
				return errors.Wrap(domainerrors.ErrCatNotFound, "cat removed while contributing")
			}

			return errors.Wrap(err, "failed to create activity")
		}
		entry = created

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add contribution")
	}

	return entry, nil
}
