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

// adoptionRequestRepository implements the repository.AdoptionRequestRepository interface.
type adoptionRequestRepository struct {
	db *gorm.DB
}

// NewAdoptionRequestRepository is the constructor for adoptionRequestRepository.
func NewAdoptionRequestRepository(db *gorm.DB) repository.AdoptionRequestRepository {
	return &adoptionRequestRepository{db: db}
}

// Create persists a request. The (listing_id, sender_id) unique index rejects a second application.
func (repo *adoptionRequestRepository) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRequest
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adoption request")
	}

	request.ID = requestM.ID
	request.SubmittedAt = requestM.SubmittedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a request by its ID.
func (repo *adoptionRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error) {
	var requestM model.AdoptionRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByListingAndSender retrieves the request a sender filed against a listing.
func (repo *adoptionRequestRepository) FindByListingAndSender(ctx context.Context, listingID, senderID uuid.UUID) (*entity.AdoptionRequest, error) {
	var requestM model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND sender_id = ?", listingID, senderID).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption request by listing and sender")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateStatus moves the request from one status to another. The status is
// part of the WHERE clause so a concurrent decision leaves zero rows to update.
func (repo *adoptionRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdoptionRequestModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update adoption request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestStatusChanged
	}

	return nil
}

// DeletePending removes the request while it is still pending.
func (repo *adoptionRequestRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(entity.RequestStatusPending)).
		Delete(&model.AdoptionRequestModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete adoption request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestStatusChanged
	}

	return nil
}

// FindBySender returns every request a user sent, newest first.
func (repo *adoptionRequestRepository) FindBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	var requestModels []*model.AdoptionRequestModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("submitted_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find adoption requests by sender")
	}

	requests := make([]*entity.AdoptionRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// FindAcceptedContacts returns receiver contact details for the sender's accepted requests.
func (repo *adoptionRequestRepository) FindAcceptedContacts(ctx context.Context, senderID uuid.UUID) ([]*entity.AcceptedRequestContact, error) {
	var rows []*model.AcceptedContactRow

	if err := repo.db.WithContext(ctx).
		Table("adoption_requests AS ar").
		Select(`ar.id AS request_id, ar.listing_id, c.name AS cat_name, ar.receiver_id,
			u.full_name AS receiver_name, u.username AS receiver_user, u.email AS receiver_email,
			u.phone AS receiver_phone, ar.submitted_at`).
		Joins("JOIN adoption_listings al ON al.id = ar.listing_id").
		Joins("JOIN cats c ON c.id = al.cat_id").
		Joins("JOIN users u ON u.id = ar.receiver_id").
		Where("ar.sender_id = ? AND ar.status = ?", senderID, string(entity.RequestStatusAccepted)).
		Order("ar.submitted_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted adoption requests")
	}

	contacts := make([]*entity.AcceptedRequestContact, 0, len(rows))
	for _, row := range rows {
		receiver := entity.User{FullName: row.ReceiverName, Username: row.ReceiverUser}
		contacts = append(contacts, &entity.AcceptedRequestContact{
			RequestID:     row.RequestID,
			ListingID:     row.ListingID,
			CatName:       row.CatName,
			ReceiverID:    row.ReceiverID,
			ReceiverName:  receiver.DisplayName(),
			ReceiverEmail: row.ReceiverEmail,
			ReceiverPhone: row.ReceiverPhone,
			SubmittedAt:   row.SubmittedAt,
		})
	}

	return contacts, nil
}

// FindIncoming returns requests addressed to receiverID, newest first, optionally filtered by status.
func (repo *adoptionRequestRepository) FindIncoming(ctx context.Context, receiverID uuid.UUID, status entity.RequestStatus) ([]*entity.IncomingRequestView, error) {
	var rows []*model.IncomingRequestRow

	query := repo.db.WithContext(ctx).
		Table("adoption_requests AS ar").
		Select(`ar.*, u.username AS sender_username, u.full_name AS sender_full_name, c.name AS cat_name`).
		Joins("JOIN users u ON u.id = ar.sender_id").
		Joins("JOIN adoption_listings al ON al.id = ar.listing_id").
		Joins("JOIN cats c ON c.id = al.cat_id").
		Where("ar.receiver_id = ?", receiverID)

	if status != "" {
		query = query.Where("ar.status = ?", string(status))
	}

	if err := query.Order("ar.submitted_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find incoming adoption requests")
	}

	views := make([]*entity.IncomingRequestView, 0, len(rows))
	for _, row := range rows {
		sender := entity.User{FullName: row.SenderFullName, Username: row.SenderUsername}
		views = append(views, &entity.IncomingRequestView{
			AdoptionRequest: *toRequestDomain(&row.AdoptionRequestModel),
			SenderName:      sender.DisplayName(),
			CatName:         row.CatName,
		})
	}

	return views, nil
}

// --- Mapper Functions ---

func toRequestDomain(data *model.AdoptionRequestModel) *entity.AdoptionRequest {
	if data == nil {
		return nil
	}

	return &entity.AdoptionRequest{
		ID:          data.ID,
		ListingID:   data.ListingID,
		SenderID:    data.SenderID,
		ReceiverID:  data.ReceiverID,
		Status:      entity.RequestStatus(data.Status),
		SubmittedAt: data.SubmittedAt,
		UpdatedAt:   data.UpdatedAt,
		AdoptionApplication: entity.AdoptionApplication{
			City:              data.City,
			Age:               data.Age,
			FullName:          data.FullName,
			ReasonForAdoption: data.ReasonForAdoption,
			LivingSituation:   data.LivingSituation,
			ExperienceLevel:   entity.ExperienceLevel(data.ExperienceLevel),
			HasOtherPets:      data.HasOtherPets,
		},
	}
}

func fromRequestDomain(data *entity.AdoptionRequest) *model.AdoptionRequestModel {
	if data == nil {
		return nil
	}

	return &model.AdoptionRequestModel{
		ID:                data.ID,
		ListingID:         data.ListingID,
		SenderID:          data.SenderID,
		ReceiverID:        data.ReceiverID,
		Status:            string(data.Status),
		City:              data.City,
		Age:               data.Age,
		FullName:          data.FullName,
		ReasonForAdoption: data.ReasonForAdoption,
		LivingSituation:   data.LivingSituation,
		ExperienceLevel:   string(data.ExperienceLevel),
		HasOtherPets:      data.HasOtherPets,
		SubmittedAt:       data.SubmittedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
