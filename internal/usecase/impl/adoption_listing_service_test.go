package impl

import (
	"context"
	"testing"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	mockRepo "catrescue/internal/mocks/repository"
	mockService "catrescue/internal/mocks/service"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingServiceFixtures struct {
	service   usecase.AdoptionListingUsecase
	txManager *mockRepo.MockTransactionManager
	qrService *mockService.MockQRCodeService
	repos     *mockRepos
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrService := mockService.NewMockQRCodeService(t)

	return listingServiceFixtures{
		service:   NewAdoptionListingService(txManager, qrService, nil, newDiscardLogger()),
		txManager: txManager,
		qrService: qrService,
		repos:     newMockRepos(t),
	}
}

func TestAdoptionListingService_CreateListing_Success(t *testing.T) {
	fx := createTestListingService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	ownerID := uuid.New()
	cat := &entity.Cat{ID: uuid.New(), Name: "Mishmish", AddingUserID: &ownerID}

	fx.repos.cat.EXPECT().FindByIDForUpdate(ctx, cat.ID).Return(cat, nil)
	fx.repos.pin.EXPECT().FindByCatID(ctx, cat.ID).Return(nil, repository.ErrPinNotFound)
	fx.repos.listing.EXPECT().FindByCatID(ctx, cat.ID).Return(nil, repository.ErrListingNotFound)
	fx.repos.listing.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.AdoptionListing) bool {
			return l.CatID == cat.ID && l.UploaderID == ownerID && l.IsActive && l.Vaccinated
		})).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, ownerID, &usecase.CreateListingInput{CatID: cat.ID, Vaccinated: true})

	require.NoError(t, err)
	assert.Equal(t, cat, listing.Cat)
	assert.True(t, listing.IsActive)
}

func TestAdoptionListingService_CreateListing_Errors(t *testing.T) {
	ownerID := uuid.New()
	catID := uuid.New()
	ownedCat := &entity.Cat{ID: catID, AddingUserID: &ownerID}

	tests := []struct {
		name    string
		actorID uuid.UUID
		setup   func(ctx context.Context, r *mockRepos)
		wantErr error
	}{
		{
			name:    "cat missing",
			actorID: ownerID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(nil, repository.ErrCatNotFound)
			},
			wantErr: domainerrors.ErrCatNotFound,
		},
		{
			name:    "not the contributor",
			actorID: uuid.New(),
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(ownedCat, nil)
			},
			wantErr: domainerrors.ErrNotCatOwner,
		},
		{
			name:    "cat still pinned",
			actorID: ownerID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(ownedCat, nil)
				r.pin.EXPECT().FindByCatID(ctx, catID).Return(&entity.CatLocation{CatID: catID}, nil)
			},
			wantErr: domainerrors.ErrCatInStreetLocation,
		},
		{
			name:    "already listed",
			actorID: ownerID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(ownedCat, nil)
				r.pin.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrPinNotFound)
				r.listing.EXPECT().FindByCatID(ctx, catID).Return(&entity.AdoptionListing{CatID: catID}, nil)
			},
			wantErr: domainerrors.ErrListingAlreadyExists,
		},
		{
			name:    "listed concurrently",
			actorID: ownerID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(ownedCat, nil)
				r.pin.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrPinNotFound)
				r.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
				r.listing.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdoptionListing")).Return(repository.ErrDuplicateListing)
			},
			wantErr: domainerrors.ErrListingAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			tt.setup(ctx, fx.repos)

			listing, err := fx.service.CreateListing(ctx, tt.actorID, &usecase.CreateListingInput{CatID: catID})

			assert.Nil(t, listing)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAdoptionListingService_UpdateListing(t *testing.T) {
	uploaderID := uuid.New()
	listingID := uuid.New()
	catID := uuid.New()
	inactive := false
	active := true

	t.Run("uploader deactivates", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(&entity.AdoptionListing{ID: listingID, UploaderID: uploaderID, IsActive: true}, nil)
		fx.repos.listing.EXPECT().
			Update(ctx, mock.MatchedBy(func(l *entity.AdoptionListing) bool { return !l.IsActive })).
			Return(nil)

		listing, err := fx.service.UpdateListing(ctx, uploaderID, listingID, &usecase.UpdateListingInput{IsActive: &inactive})

		require.NoError(t, err)
		assert.False(t, listing.IsActive)
	})

	t.Run("reactivation blocked while cat is pinned", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).
			Return(&entity.AdoptionListing{ID: listingID, CatID: catID, UploaderID: uploaderID, IsActive: false}, nil)
		fx.repos.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
		fx.repos.pin.EXPECT().FindByCatID(ctx, catID).Return(&entity.CatLocation{CatID: catID}, nil)

		listing, err := fx.service.UpdateListing(ctx, uploaderID, listingID, &usecase.UpdateListingInput{IsActive: &active})

		assert.Nil(t, listing)
		assert.True(t, errors.Is(err, domainerrors.ErrCatInStreetLocation), "got %v", err)
	})

	t.Run("reactivation of unpinned cat", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).
			Return(&entity.AdoptionListing{ID: listingID, CatID: catID, UploaderID: uploaderID, IsActive: false}, nil)
		fx.repos.cat.EXPECT().FindByIDForUpdate(ctx, catID).Return(&entity.Cat{ID: catID}, nil)
		fx.repos.pin.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrPinNotFound)
		fx.repos.listing.EXPECT().
			Update(ctx, mock.MatchedBy(func(l *entity.AdoptionListing) bool { return l.IsActive })).
			Return(nil)

		listing, err := fx.service.UpdateListing(ctx, uploaderID, listingID, &usecase.UpdateListingInput{IsActive: &active})

		require.NoError(t, err)
		assert.True(t, listing.IsActive)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(&entity.AdoptionListing{ID: listingID, UploaderID: uploaderID}, nil)

		listing, err := fx.service.UpdateListing(ctx, uuid.New(), listingID, &usecase.UpdateListingInput{IsActive: &inactive})

		assert.Nil(t, listing)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestAdoptionListingService_DeleteListing(t *testing.T) {
	uploaderID := uuid.New()
	listingID := uuid.New()

	t.Run("uploader", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(&entity.AdoptionListing{ID: listingID, UploaderID: uploaderID}, nil)
		fx.repos.listing.EXPECT().Delete(ctx, listingID).Return(nil)

		require.NoError(t, fx.service.DeleteListing(ctx, uploaderID, listingID))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(nil, repository.ErrListingNotFound)

		err := fx.service.DeleteListing(ctx, uploaderID, listingID)
		assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
	})
}

func TestAdoptionListingService_GetListingQRCode(t *testing.T) {
	listingID := uuid.New()

	t.Run("renders png", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(&entity.AdoptionListing{ID: listingID}, nil)
		fx.qrService.EXPECT().GenerateListingQR(listingID).Return([]byte("png"), nil)

		png, err := fx.service.GetListingQRCode(ctx, listingID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown listing", func(t *testing.T) {
		fx := createTestListingService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.listing.EXPECT().FindByID(ctx, listingID).Return(nil, repository.ErrListingNotFound)

		png, err := fx.service.GetListingQRCode(ctx, listingID)

		assert.Nil(t, png)
		assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
	})
}
