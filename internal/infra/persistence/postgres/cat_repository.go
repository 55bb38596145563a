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
	"gorm.io/gorm/clause"
)

// catRepository implements the repository.CatRepository interface.
type catRepository struct {
	db *gorm.DB
}

// NewCatRepository is the constructor for catRepository.
func NewCatRepository(db *gorm.DB) repository.CatRepository {
	return &catRepository{db: db}
}

// Create persists a new cat.
func (repo *catRepository) Create(ctx context.Context, cat *entity.Cat) error {
	catM := fromCatDomain(cat)

	if err := repo.db.WithContext(ctx).Create(catM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cat")
	}

	cat.ID = catM.ID
	cat.CreatedAt = catM.CreatedAt
	cat.UpdatedAt = catM.UpdatedAt

	return nil
}

// FindByID retrieves a cat by its ID.
func (repo *catRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cat, error) {
	var catM model.CatModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&catM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatNotFound
		}

		return nil, errors.Wrap(err, "failed to find cat by ID")
	}

	return toCatDomain(&catM), nil
}

// FindByIDForUpdate retrieves a cat with SELECT ... FOR UPDATE. It must run
// inside a transaction for the lock to outlive the statement.
func (repo *catRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Cat, error) {
	var catM model.CatModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&catM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatNotFound
		}

		return nil, errors.Wrap(err, "failed to lock cat by ID")
	}

	return toCatDomain(&catM), nil
}

// Update writes the editable attributes of a cat. The contributor is never reassigned.
func (repo *catRepository) Update(ctx context.Context, cat *entity.Cat) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CatModel{}).
		Where("id = ?", cat.ID).
		Updates(map[string]any{
			"name":      cat.Name,
			"gender":    string(cat.Gender),
			"age":       cat.Age,
			"notes":     cat.Notes,
			"image_url": cat.ImageURL,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatNotFound
	}

	return nil
}

// Delete removes a cat. Pins, listings, requests and history cascade at the database level.
func (repo *catRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CatModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatNotFound
	}

	return nil
}

// FindByAddingUser returns the cats a user contributed, newest first.
func (repo *catRepository) FindByAddingUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cat, error) {
	var catModels []*model.CatModel

	if err := repo.db.WithContext(ctx).
		Where("adding_user_id = ?", userID).
		Order("created_at DESC").
		Find(&catModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cats by adding user")
	}

	return toCatDomains(catModels), nil
}

// FindUnlisted returns cats without an adoption listing, newest first.
func (repo *catRepository) FindUnlisted(ctx context.Context) ([]*entity.Cat, error) {
	var catModels []*model.CatModel

	if err := repo.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM adoption_listings al WHERE al.cat_id = cats.id)").
		Order("created_at DESC").
		Find(&catModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unlisted cats")
	}

	return toCatDomains(catModels), nil
}

// --- Mapper Functions ---

func toCatDomain(data *model.CatModel) *entity.Cat {
	if data == nil {
		return nil
	}

	return &entity.Cat{
		ID:           data.ID,
		Name:         data.Name,
		Gender:       entity.Gender(data.Gender),
		Age:          data.Age,
		Notes:        data.Notes,
		ImageURL:     data.ImageURL,
		AddingUserID: data.AddingUserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCatDomains(data []*model.CatModel) []*entity.Cat {
	cats := make([]*entity.Cat, 0, len(data))
	for _, catM := range data {
		cats = append(cats, toCatDomain(catM))
	}

	return cats
}

func fromCatDomain(data *entity.Cat) *model.CatModel {
	if data == nil {
		return nil
	}

	return &model.CatModel{
		ID:           data.ID,
		Name:         data.Name,
		Gender:       string(data.Gender),
		Age:          data.Age,
		Notes:        data.Notes,
		ImageURL:     data.ImageURL,
		AddingUserID: data.AddingUserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
