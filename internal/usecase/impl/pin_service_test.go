package impl

import (
	"context"
	"testing"

	"catrescue/internal/domain/constants"
	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	mockRepo "catrescue/internal/mocks/repository"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pinServiceFixtures struct {
	service   usecase.PinUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *mockRepos
}

func createTestPinService(t *testing.T) pinServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPinService(txManager, entity.DefaultServiceArea(), nil, newDiscardLogger())

	return pinServiceFixtures{
		service:   service,
		txManager: txManager,
		repos:     newMockRepos(t),
	}
}

func TestPinService_ListPins_DisplaysUnknownAsNormal(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	pins := []*entity.PinView{
		{CatLocation: entity.CatLocation{ID: uuid.New(), Condition: entity.ConditionUnknown}},
		{CatLocation: entity.CatLocation{ID: uuid.New(), Condition: entity.ConditionUrgent}},
	}
	fx.repos.pin.EXPECT().ListLatest(ctx, constants.PinFeedLimit).Return(pins, nil)

	got, err := fx.service.ListPins(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.ConditionNormal, got[0].Condition)
	assert.Equal(t, entity.ConditionUrgent, got[1].Condition)
}

func TestPinService_ReportPin_CreatesNewPin(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	catID := uuid.New()
	input := &usecase.ReportPinInput{CatID: catID, Latitude: 24, Longitude: 46}

	fx.repos.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
	fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
	fx.repos.pin.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrPinNotFound)
	fx.repos.pin.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.CatLocation) bool {
			return p.CatID == catID && p.Condition == entity.ConditionUnknown
		})).
		Return(nil)

	pin, err := fx.service.ReportPin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 24.0, pin.Latitude)
	assert.Equal(t, 46.0, pin.Longitude)
}

func TestPinService_ReportPin_MovesExistingPin(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	catID := uuid.New()
	existing := &entity.CatLocation{ID: uuid.New(), CatID: catID, Latitude: 20, Longitude: 40, Condition: entity.ConditionUrgent}
	input := &usecase.ReportPinInput{CatID: catID, Latitude: 25, Longitude: 45}

	fx.repos.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
	fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
	fx.repos.pin.EXPECT().FindByCatID(ctx, catID).Return(existing, nil)
	fx.repos.pin.EXPECT().UpdateCoordinates(ctx, existing.ID, 25.0, 45.0).Return(nil)

	pin, err := fx.service.ReportPin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, pin.ID)
	assert.Equal(t, 25.0, pin.Latitude)
	assert.Equal(t, entity.ConditionUrgent, pin.Condition)
}

func TestPinService_ReportPin_Errors(t *testing.T) {
	catID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.ReportPinInput
		setup   func(ctx context.Context, r *mockRepos)
		wantErr error
	}{
		{
			name:  "cat missing",
			input: &usecase.ReportPinInput{CatID: catID, Latitude: 24, Longitude: 46},
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(nil, repository.ErrCatNotFound)
			},
			wantErr: domainerrors.ErrCatNotFound,
		},
		{
			name:  "cat listed",
			input: &usecase.ReportPinInput{CatID: catID, Latitude: 24, Longitude: 46},
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
				r.listing.EXPECT().FindByCatID(ctx, catID).Return(&entity.AdoptionListing{CatID: catID, IsActive: true}, nil)
			},
			wantErr: domainerrors.ErrCatListedForAdoption,
		},
		{
			name:  "outside service area",
			input: &usecase.ReportPinInput{CatID: catID, Latitude: 40, Longitude: 46},
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
				r.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
			},
			wantErr: domainerrors.ErrOutOfServiceArea,
		},
		{
			name:  "concurrent insert",
			input: &usecase.ReportPinInput{CatID: catID, Latitude: 24, Longitude: 46},
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
				r.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
				r.pin.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrPinNotFound)
				r.pin.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CatLocation")).Return(repository.ErrDuplicatePin)
			},
			wantErr: domainerrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPinService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			tt.setup(ctx, fx.repos)

			pin, err := fx.service.ReportPin(ctx, tt.input)

			assert.Nil(t, pin)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPinService_UpdateCondition_UrgentWithDescriptionLogsActivity(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	actorID := uuid.New()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID, Condition: entity.ConditionNormal}

	fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
	fx.repos.pin.EXPECT().UpdateCondition(ctx, pin.ID, entity.ConditionNormal, entity.ConditionUrgent).Return(nil)
	fx.repos.activity.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.ActivityType == entity.ActivityConditionUrgent &&
				l.Description == "Condition changed to URGENT: limping" &&
				l.UserID != nil && *l.UserID == actorID
		})).
		Return(nil)

	got, err := fx.service.UpdateCondition(ctx, actorID, pin.ID, &usecase.UpdateConditionInput{
		Condition:   entity.ConditionUrgent,
		Description: "limping",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConditionUrgent, got.Condition)
}

func TestPinService_UpdateCondition_AtVetWithoutDescriptionSkipsActivity(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID, Condition: entity.ConditionUrgent}

	fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
	fx.repos.pin.EXPECT().UpdateCondition(ctx, pin.ID, entity.ConditionUrgent, entity.ConditionAtVet).Return(nil)

	got, err := fx.service.UpdateCondition(ctx, uuid.New(), pin.ID, &usecase.UpdateConditionInput{Condition: "at vet"})

	require.NoError(t, err)
	assert.Equal(t, entity.ConditionAtVet, got.Condition)
}

func TestPinService_UpdateCondition_AdoptedByOwner(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	ownerID := uuid.New()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID, Condition: entity.ConditionNormal}

	fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
	fx.repos.pin.EXPECT().UpdateCondition(ctx, pin.ID, entity.ConditionNormal, entity.ConditionAdopted).Return(nil)
	fx.repos.activity.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.ActivityType == entity.ActivityConditionAdopted && l.Description == "Cat marked as ADOPTED"
		})).
		Return(nil)

	got, err := fx.service.UpdateCondition(ctx, ownerID, pin.ID, &usecase.UpdateConditionInput{Condition: entity.ConditionAdopted})

	require.NoError(t, err)
	assert.Equal(t, entity.ConditionAdopted, got.Condition)
}

func TestPinService_UpdateCondition_SameTerminalIsNoop(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	ownerID := uuid.New()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID, Condition: entity.ConditionPassed}

	fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)

	got, err := fx.service.UpdateCondition(ctx, ownerID, pin.ID, &usecase.UpdateConditionInput{Condition: entity.ConditionPassed})

	require.NoError(t, err)
	assert.Equal(t, entity.ConditionPassed, got.Condition)
}

func TestPinService_UpdateCondition_Errors(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	catID := uuid.New()
	pinID := uuid.New()

	tests := []struct {
		name      string
		actorID   uuid.UUID
		condition entity.Condition
		setup     func(ctx context.Context, r *mockRepos)
		wantErr   error
	}{
		{
			name:      "unknown condition",
			actorID:   ownerID,
			condition: "SLEEPY",
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(&entity.CatLocation{ID: pinID, CatID: catID, Condition: entity.ConditionNormal}, nil)
				r.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
			},
			wantErr: domainerrors.ErrInvalidCondition,
		},
		{
			name:      "unknown condition on missing pin",
			actorID:   ownerID,
			condition: "SLEEPY",
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(nil, repository.ErrPinNotFound)
			},
			wantErr: domainerrors.ErrPinNotFound,
		},
		{
			name:      "pin missing",
			actorID:   ownerID,
			condition: entity.ConditionUrgent,
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(nil, repository.ErrPinNotFound)
			},
			wantErr: domainerrors.ErrPinNotFound,
		},
		{
			name:      "cat missing",
			actorID:   ownerID,
			condition: entity.ConditionUrgent,
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(&entity.CatLocation{ID: pinID, CatID: catID}, nil)
				r.cat.EXPECT().FindByID(ctx, catID).Return(nil, repository.ErrCatNotFound)
			},
			wantErr: domainerrors.ErrCatNotFound,
		},
		{
			name:      "terminal by stranger",
			actorID:   strangerID,
			condition: entity.ConditionAdopted,
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(&entity.CatLocation{ID: pinID, CatID: catID, Condition: entity.ConditionNormal}, nil)
				r.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
			},
			wantErr: domainerrors.ErrNotCatOwner,
		},
		{
			name:      "leaving terminal",
			actorID:   ownerID,
			condition: entity.ConditionUrgent,
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(&entity.CatLocation{ID: pinID, CatID: catID, Condition: entity.ConditionAdopted}, nil)
				r.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
			},
			wantErr: domainerrors.ErrInvalidTransition,
		},
		{
			name:      "condition changed concurrently",
			actorID:   ownerID,
			condition: entity.ConditionAdopted,
			setup: func(ctx context.Context, r *mockRepos) {
				r.pin.EXPECT().FindByID(ctx, pinID).Return(&entity.CatLocation{ID: pinID, CatID: catID, Condition: entity.ConditionNormal}, nil)
				r.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
				r.pin.EXPECT().UpdateCondition(ctx, pinID, entity.ConditionNormal, entity.ConditionAdopted).Return(repository.ErrPinConditionChanged)
			},
			wantErr: domainerrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPinService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			tt.setup(ctx, fx.repos)

			pin, err := fx.service.UpdateCondition(ctx, tt.actorID, pinID, &usecase.UpdateConditionInput{Condition: tt.condition})

			assert.Nil(t, pin)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPinService_UpdateCondition_ActivityFailureRollsBack(t *testing.T) {
	fx := createTestPinService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	ownerID := uuid.New()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID, Condition: entity.ConditionNormal}

	fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
	fx.repos.pin.EXPECT().UpdateCondition(ctx, pin.ID, entity.ConditionNormal, entity.ConditionPassed).Return(nil)
	fx.repos.activity.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ActivityLog")).Return(errors.New("db error"))

	got, err := fx.service.UpdateCondition(ctx, ownerID, pin.ID, &usecase.UpdateConditionInput{Condition: entity.ConditionPassed})

	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to record condition change")
}

func TestPinService_DeletePin(t *testing.T) {
	ownerID := uuid.New()
	catID := uuid.New()
	pin := &entity.CatLocation{ID: uuid.New(), CatID: catID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestPinService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
		fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
		fx.repos.pin.EXPECT().Delete(ctx, pin.ID).Return(nil)

		require.NoError(t, fx.service.DeletePin(ctx, ownerID, pin.ID))
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestPinService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(pin, nil)
		fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)

		err := fx.service.DeletePin(ctx, uuid.New(), pin.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrNotCatOwner))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestPinService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.pin.EXPECT().FindByID(ctx, pin.ID).Return(nil, repository.ErrPinNotFound)

		err := fx.service.DeletePin(ctx, ownerID, pin.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
	})
}
