package impl

import (
	"context"
	"log/slog"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/infra/metrics"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type adoptionListingService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewAdoptionListingService creates a new adoption listing service instance
func NewAdoptionListingService(
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.AdoptionListingUsecase {
	return &adoptionListingService{
		txManager: txManager,
		qrService: qrService,
		metrics:   m,
		logger:    logger,
	}
}

// CreateListing offers a cat for adoption. Only its contributor may list it,
// and only once the cat is off the street map.
func (srv *adoptionListingService) CreateListing(ctx context.Context, actorID uuid.UUID, input *usecase.CreateListingInput) (*entity.AdoptionListing, error) {
	srv.logger.Info("Creating adoption listing", "catID", input.CatID, "userID", actorID)

	var listing *entity.AdoptionListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		// 1. Cat must exist; its row lock serializes against pin writes
		cat, err := repoFactory.CatRepo().FindByIDForUpdate(ctx, input.CatID)
		if err != nil {
			return wrapCatError(err, "failed to find cat")
		}

		// 2. Only the contributor lists a cat
		if !cat.IsAddedBy(actorID) {
			return errors.Wrap(domainerrors.ErrNotCatOwner, "actor did not add the cat")
		}

		// 3. A pinned cat is still on the street
		if err := ensureCatUnpinned(ctx, repoFactory.PinRepo(), cat.ID); err != nil {
			return err
		}

		// 4. One listing per cat
		_, err = listingRepo.FindByCatID(ctx, cat.ID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrListingAlreadyExists, "cat already listed")
		}
		if !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to find listing for cat")
		}

		created := &entity.AdoptionListing{
			CatID:      cat.ID,
			UploaderID: actorID,
			Vaccinated: input.Vaccinated,
			Sterilized: input.Sterilized,
			IsActive:   true,
			Notes:      input.Notes,
		}
		if err := listingRepo.Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateListing) {
				return errors.Wrap(domainerrors.ErrListingAlreadyExists, "cat already listed")
			}

			return errors.Wrap(err, "failed to create listing")
		}
		created.Cat = cat
		listing = created

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create adoption listing")
	}

	srv.metrics.IncrementListingsCreated()

	return listing, nil
}

// ListListings returns every listing with its cat, newest first.
func (srv *adoptionListingService) ListListings(ctx context.Context) ([]*entity.AdoptionListing, error) {
	var listings []*entity.AdoptionListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ListingRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find listings")
		}
		listings = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list adoption listings")
	}

	return listings, nil
}

// UpdateListing merges the supplied fields. Only the uploader may change a listing.
func (srv *adoptionListingService) UpdateListing(ctx context.Context, actorID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.AdoptionListing, error) {
	srv.logger.Info("Updating adoption listing", "listingID", listingID, "userID", actorID)

	var listing *entity.AdoptionListing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findUploadedListing(ctx, repoFactory.ListingRepo(), actorID, listingID)
		if err != nil {
			return err
		}

		if input.Vaccinated != nil {
			found.Vaccinated = *input.Vaccinated
		}
		if input.Sterilized != nil {
			found.Sterilized = *input.Sterilized
		}
		if input.Notes != nil {
			found.Notes = *input.Notes
		}
		if input.IsActive != nil {
			// Reactivation puts the cat back on offer, so it must be off the map again.
			if *input.IsActive && !found.IsActive {
				if _, err := repoFactory.CatRepo().FindByIDForUpdate(ctx, found.CatID); err != nil {
					return wrapCatError(err, "failed to find listed cat")
				}
				if err := ensureCatUnpinned(ctx, repoFactory.PinRepo(), found.CatID); err != nil {
					return err
				}
			}
			found.IsActive = *input.IsActive
		}

		if err := repoFactory.ListingRepo().Update(ctx, found); err != nil {
			return wrapListingError(err, "failed to update listing")
		}
		listing = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update adoption listing")
	}

	return listing, nil
}

// DeleteListing removes a listing and, by cascade, its requests.
func (srv *adoptionListingService) DeleteListing(ctx context.Context, actorID, listingID uuid.UUID) error {
	srv.logger.Info("Deleting adoption listing", "listingID", listingID, "userID", actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findUploadedListing(ctx, repoFactory.ListingRepo(), actorID, listingID); err != nil {
			return err
		}

		if err := repoFactory.ListingRepo().Delete(ctx, listingID); err != nil {
			return wrapListingError(err, "failed to delete listing")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete adoption listing")
	}

	return nil
}

// GetListingQRCode renders the share code of an existing listing.
func (srv *adoptionListingService) GetListingQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ListingRepo().FindByID(ctx, listingID); err != nil {
			return wrapListingError(err, "failed to find listing")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	png, err := srv.qrService.GenerateListingQR(listingID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func findUploadedListing(ctx context.Context, listingRepo repository.AdoptionListingRepository, actorID, listingID uuid.UUID) (*entity.AdoptionListing, error) {
	listing, err := listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, wrapListingError(err, "failed to find listing")
	}
	if !listing.IsUploadedBy(actorID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the uploader can change the listing")
	}

	return listing, nil
}

func ensureCatUnpinned(ctx context.Context, pinRepo repository.PinRepository, catID uuid.UUID) error {
	_, err := pinRepo.FindByCatID(ctx, catID)
	if err == nil {
		return errors.Wrap(domainerrors.ErrCatInStreetLocation, "cat has a pin")
	}
	if !errors.Is(err, repository.ErrPinNotFound) {
		return errors.Wrap(err, "failed to find pin for cat")
	}

	return nil
}

func wrapListingError(err error, message string) error {
	if errors.Is(err, repository.ErrListingNotFound) {
		return errors.Wrap(domainerrors.ErrListingNotFound, message)
	}

	return errors.Wrap(err, message)
}
