package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catService struct {
	txManager repository.TransactionManager
	storage   service.ImageStorage
	logger    *slog.Logger
}

// NewCatService creates a new cat service instance
func NewCatService(
	txManager repository.TransactionManager,
	storage service.ImageStorage,
	logger *slog.Logger,
) usecase.CatUsecase {
	return &catService{
		txManager: txManager,
		storage:   storage,
		logger:    logger,
	}
}

// CreateCat registers a cat contributed by actorID.
func (srv *catService) CreateCat(ctx context.Context, actorID uuid.UUID, input *usecase.CreateCatInput) (*entity.Cat, error) {
	gender := input.Gender
	if gender == "" {
		gender = entity.GenderUnknown
	}
	if !gender.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender")
	}

	cat := &entity.Cat{
		Name:         strings.TrimSpace(input.Name),
		Gender:       gender,
		Age:          input.Age,
		Notes:        input.Notes,
		AddingUserID: &actorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CatRepo().Create(ctx, cat); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "adding user not found")
			}

			return errors.Wrap(err, "failed to create cat")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create cat")
	}

	srv.logger.Info("Cat created", "catID", cat.ID, "userID", actorID)

	return cat, nil
}

// ListUnlistedCats returns cats that are not offered for adoption.
func (srv *catService) ListUnlistedCats(ctx context.Context) ([]*entity.Cat, error) {
	var cats []*entity.Cat

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatRepo().FindUnlisted(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find unlisted cats")
		}
		cats = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list cats")
	}

	return cats, nil
}

// ListMyCats returns the cats actorID contributed.
func (srv *catService) ListMyCats(ctx context.Context, actorID uuid.UUID) ([]*entity.Cat, error) {
	var cats []*entity.Cat

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatRepo().FindByAddingUser(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find cats by user")
		}
		cats = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list user cats")
	}

	return cats, nil
}

// UpdateCat merges the supplied fields into the cat. The contributor never changes.
func (srv *catService) UpdateCat(ctx context.Context, actorID, catID uuid.UUID, input *usecase.UpdateCatInput) (*entity.Cat, error) {
	srv.logger.Info("Updating cat", "catID", catID, "userID", actorID)

	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender")
	}

	var cat *entity.Cat

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := authorizeCatOwner(ctx, repoFactory, actorID, catID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Gender != nil {
			found.Gender = *input.Gender
		}
		if input.Age != nil {
			found.Age = input.Age
		}
		if input.Notes != nil {
			found.Notes = *input.Notes
		}

		if err := repoFactory.CatRepo().Update(ctx, found); err != nil {
			return wrapCatError(err, "failed to update cat")
		}
		cat = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update cat")
	}

	return cat, nil
}

// DeleteCat removes a cat together with its pin, listing and history.
func (srv *catService) DeleteCat(ctx context.Context, actorID, catID uuid.UUID) error {
	srv.logger.Info("Deleting cat", "catID", catID, "userID", actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := authorizeCatOwner(ctx, repoFactory, actorID, catID); err != nil {
			return err
		}

		if err := repoFactory.CatRepo().Delete(ctx, catID); err != nil {
			return wrapCatError(err, "failed to delete cat")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete cat")
	}

	return nil
}

// UploadCatImage stores a picture and points the cat at it.
func (srv *catService) UploadCatImage(ctx context.Context, actorID, catID uuid.UUID, input *usecase.CatImageInput) (*entity.Cat, error) {
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty image")
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unsupported image content type")
	}

	// 1. Authorize before touching storage
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := authorizeCatOwner(ctx, repoFactory, actorID, catID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload cat image")
	}

	// 2. Store the object
	key := imageKey(catID, input.Filename)
	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Data)
	if err != nil {
		srv.logger.Error("Failed to store cat image", "catID", catID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	// 3. Record the URL
	var cat *entity.Cat

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catRepo := repoFactory.CatRepo()

		found, err := catRepo.FindByID(ctx, catID)
		if err != nil {
			return wrapCatError(err, "failed to find cat")
		}
		found.ImageURL = url

		if err := catRepo.Update(ctx, found); err != nil {
			return wrapCatError(err, "failed to update cat image")
		}
		cat = found

		return nil
	})

	if err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.logger.Warn("Failed to remove orphaned cat image", "key", key, "error", delErr)
		}

		return nil, errors.Wrap(err, "failed to upload cat image")
	}

	return cat, nil
}

// authorizeCatOwner loads a cat and checks that actorID may change it.
// A listed cat belongs to the listing uploader, otherwise to its contributor.
func authorizeCatOwner(ctx context.Context, repoFactory repository.RepositoryFactory, actorID, catID uuid.UUID) (*entity.Cat, error) {
	cat, err := repoFactory.CatRepo().FindByID(ctx, catID)
	if err != nil {
		return nil, wrapCatError(err, "failed to find cat")
	}

	listing, err := repoFactory.ListingRepo().FindByCatID(ctx, catID)
	switch {
	case err == nil:
		if !listing.IsUploadedBy(actorID) {
			return nil, errors.Wrap(domainerrors.ErrNotCatOwner, "actor is not the listing uploader")
		}
	case errors.Is(err, repository.ErrListingNotFound):
		if !cat.IsAddedBy(actorID) {
			return nil, errors.Wrap(domainerrors.ErrNotCatOwner, "actor did not add the cat")
		}
	default:
		return nil, errors.Wrap(err, "failed to find listing for cat")
	}

	return cat, nil
}

func wrapCatError(err error, message string) error {
	if errors.Is(err, repository.ErrCatNotFound) {
		return errors.Wrap(domainerrors.ErrCatNotFound, message)
	}

	return errors.Wrap(err, message)
}

func imageKey(catID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".img"
	}

	return "cats/" + catID.String() + "/" + uuid.NewString() + ext
}
