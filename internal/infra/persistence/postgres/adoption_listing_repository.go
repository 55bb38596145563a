package postgres

import (
	"context"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adoptionListingRepository implements the repository.AdoptionListingRepository interface.
type adoptionListingRepository struct {
	db *gorm.DB
}

// NewAdoptionListingRepository is the constructor for adoptionListingRepository.
func NewAdoptionListingRepository(db *gorm.DB) repository.AdoptionListingRepository {
	return &adoptionListingRepository{db: db}
}

// Create persists a listing. The unique index on cat_id rejects a second listing for a cat.
func (repo *adoptionListingRepository) Create(ctx context.Context, listing *entity.AdoptionListing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Omit("Cat").Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListing
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCatNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adoption listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing with its cat.
func (repo *adoptionListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionListing, error) {
	var listingM model.AdoptionListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Cat").
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindByCatID retrieves the listing of a cat.
func (repo *adoptionListingRepository) FindByCatID(ctx context.Context, catID uuid.UUID) (*entity.AdoptionListing, error) {
	var listingM model.AdoptionListingModel

	if err := repo.db.WithContext(ctx).
		Where("cat_id = ?", catID).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption listing by cat")
	}

	return toListingDomain(&listingM), nil
}

// FindAll returns every listing with its cat, newest first.
func (repo *adoptionListingRepository) FindAll(ctx context.Context) ([]*entity.AdoptionListing, error) {
	var listingModels []*model.AdoptionListingModel

	if err := repo.db.WithContext(ctx).
		Preload("Cat").
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adoption listings")
	}

	listings := make([]*entity.AdoptionListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Update writes the editable attributes of a listing.
func (repo *adoptionListingRepository) Update(ctx context.Context, listing *entity.AdoptionListing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdoptionListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"vaccinated": listing.Vaccinated,
			"sterilized": listing.Sterilized,
			"is_active":  listing.IsActive,
			"notes":      listing.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update adoption listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// Delete removes a listing. Its requests cascade at the database level.
func (repo *adoptionListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdoptionListingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete adoption listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.AdoptionListingModel) *entity.AdoptionListing {
	if data == nil {
		return nil
	}

	return &entity.AdoptionListing{
		ID:         data.ID,
		CatID:      data.CatID,
		UploaderID: data.UploaderID,
		Vaccinated: data.Vaccinated,
		Sterilized: data.Sterilized,
		IsActive:   data.IsActive,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Cat:        toCatDomain(data.Cat),
	}
}

func fromListingDomain(data *entity.AdoptionListing) *model.AdoptionListingModel {
	if data == nil {
		return nil
	}

	return &model.AdoptionListingModel{
		ID:         data.ID,
		CatID:      data.CatID,
		UploaderID: data.UploaderID,
		Vaccinated: data.Vaccinated,
		Sterilized: data.Sterilized,
		IsActive:   data.IsActive,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
