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

// activityLogRepository implements the repository.ActivityLogRepository interface.
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository is the constructor for activityLogRepository.
func NewActivityLogRepository(db *gorm.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create appends an entry to a cat's history.
func (repo *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	logM := &model.ActivityLogModel{
		ID:                  log.ID,
		CatID:               log.CatID,
		UserID:              log.UserID,
		ActivityType:        string(log.ActivityType),
		ActivityDescription: log.Description,
		ActivityTime:        log.ActivityTime,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCatNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity log")
	}

	log.ID = logM.ID

	return nil
}

// FindByCat returns a cat's history, newest first.
func (repo *activityLogRepository) FindByCat(ctx context.Context, catID uuid.UUID) ([]*entity.ActivityLog, error) {
	return repo.find(ctx, "cat_id = ?", catID)
}

// FindByUser returns entries written by a user, newest first.
func (repo *activityLogRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityLog, error) {
	return repo.find(ctx, "user_id = ?", userID)
}

func (repo *activityLogRepository) find(ctx context.Context, query string, arg any) ([]*entity.ActivityLog, error) {
	var logModels []*model.ActivityLogModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("activity_time DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logModels))
	for _, l := range logModels {
		logs = append(logs, &entity.ActivityLog{
			ID:           l.ID,
			CatID:        l.CatID,
			UserID:       l.UserID,
			ActivityType: entity.ActivityType(l.ActivityType),
			Description:  l.ActivityDescription,
			ActivityTime: l.ActivityTime,
		})
	}

	return logs, nil
}
