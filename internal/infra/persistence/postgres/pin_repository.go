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

// pinRepository implements the repository.PinRepository interface.
type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository is the constructor for pinRepository.
func NewPinRepository(db *gorm.DB) repository.PinRepository {
	return &pinRepository{db: db}
}

// Create persists a new pin. The unique index on cat_id rejects a second pin for the same cat.
func (repo *pinRepository) Create(ctx context.Context, pin *entity.CatLocation) error {
	pinM := fromPinDomain(pin)

	if err := repo.db.WithContext(ctx).Create(pinM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePin
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCatNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pin")
	}

	pin.ID = pinM.ID
	pin.CreatedAt = pinM.CreatedAt
	pin.UpdatedAt = pinM.UpdatedAt

	return nil
}

// FindByID retrieves a pin by its ID.
func (repo *pinRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CatLocation, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByCatID retrieves the pin of a cat.
func (repo *pinRepository) FindByCatID(ctx context.Context, catID uuid.UUID) (*entity.CatLocation, error) {
	return repo.findOne(ctx, "cat_id = ?", catID)
}

func (repo *pinRepository) findOne(ctx context.Context, query string, arg any) (*entity.CatLocation, error) {
	var pinM model.CatLocationModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&pinM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin")
	}

	return toPinDomain(&pinM), nil
}

// UpdateCoordinates moves an existing pin.
func (repo *pinRepository) UpdateCoordinates(ctx context.Context, id uuid.UUID, latitude, longitude float64) error {
	return repo.update(ctx, id, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
	})
}

// UpdateCondition sets the condition of a pin only while it still holds from,
// so two racing writers cannot both apply.
func (repo *pinRepository) UpdateCondition(ctx context.Context, id uuid.UUID, from, to entity.Condition) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CatLocationModel{}).
		Where("id = ? AND condition = ?", id, string(from)).
		Update("condition", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pin condition")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPinConditionChanged
	}

	return nil
}

func (repo *pinRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CatLocationModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPinNotFound
	}

	return nil
}

// Delete removes a pin.
func (repo *pinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CatLocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPinNotFound
	}

	return nil
}

// ListLatest returns up to limit pins joined with cat and contributor data, newest first.
func (repo *pinRepository) ListLatest(ctx context.Context, limit int) ([]*entity.PinView, error) {
	var rows []*model.PinRow

	if err := repo.db.WithContext(ctx).
		Table("cat_locations AS cl").
		Select(`cl.id, cl.cat_id, cl.latitude, cl.longitude, cl.condition, cl.created_at, cl.updated_at,
			c.name AS cat_name, c.adding_user_id AS adding_user_id, u.username AS adding_user_username`).
		Joins("JOIN cats c ON c.id = cl.cat_id").
		Joins("LEFT JOIN users u ON u.id = c.adding_user_id").
		Order("cl.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pins")
	}

	pins := make([]*entity.PinView, 0, len(rows))
	for _, row := range rows {
		view := &entity.PinView{
			CatLocation:  *toPinDomain(&row.CatLocationModel),
			CatName:      row.CatName,
			AddingUserID: row.AddingUserID,
		}
		if row.AddingUserUsername != nil {
			view.AddingUserUsername = *row.AddingUserUsername
		}
		pins = append(pins, view)
	}

	return pins, nil
}

// --- Mapper Functions ---

func toPinDomain(data *model.CatLocationModel) *entity.CatLocation {
	if data == nil {
		return nil
	}

	return &entity.CatLocation{
		ID:        data.ID,
		CatID:     data.CatID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Condition: entity.Condition(data.Condition),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPinDomain(data *entity.CatLocation) *model.CatLocationModel {
	if data == nil {
		return nil
	}

	condition := data.Condition
	if condition == "" {
		condition = entity.ConditionUnknown
	}

	return &model.CatLocationModel{
		ID:        data.ID,
		CatID:     data.CatID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Condition: string(condition),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
