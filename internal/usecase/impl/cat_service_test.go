package impl

import (
	"context"
	"strings"
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

type catServiceFixtures struct {
	service   usecase.CatUsecase
	txManager *mockRepo.MockTransactionManager
	storage   *mockService.MockImageStorage
	repos     *mockRepos
}

func createTestCatService(t *testing.T) catServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storage := mockService.NewMockImageStorage(t)

	return catServiceFixtures{
		service:   NewCatService(txManager, storage, newDiscardLogger()),
		txManager: txManager,
		storage:   storage,
		repos:     newMockRepos(t),
	}
}

func TestCatService_CreateCat(t *testing.T) {
	fx := createTestCatService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	actorID := uuid.New()

	fx.repos.cat.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Cat) bool {
			return c.Name == "Mishmish" && c.Gender == entity.GenderUnknown && c.IsAddedBy(actorID)
		})).
		Return(nil)

	cat, err := fx.service.CreateCat(ctx, actorID, &usecase.CreateCatInput{Name: " Mishmish "})

	require.NoError(t, err)
	assert.Equal(t, "Mishmish", cat.Name)
}

func TestCatService_CreateCat_InvalidGender(t *testing.T) {
	fx := createTestCatService(t)

	cat, err := fx.service.CreateCat(context.Background(), uuid.New(), &usecase.CreateCatInput{Name: "Mishmish", Gender: "X"})

	assert.Nil(t, cat)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatService_UpdateCat_Ownership(t *testing.T) {
	ownerID := uuid.New()
	uploaderID := uuid.New()
	catID := uuid.New()
	newName := "Simba"

	tests := []struct {
		name    string
		actorID uuid.UUID
		listing *entity.AdoptionListing
		wantErr error
	}{
		{name: "contributor of unlisted cat", actorID: ownerID},
		{name: "stranger on unlisted cat", actorID: uuid.New(), wantErr: domainerrors.ErrNotCatOwner},
		{
			name:    "uploader of listed cat",
			actorID: uploaderID,
			listing: &entity.AdoptionListing{CatID: catID, UploaderID: uploaderID},
		},
		{
			name:    "contributor of cat listed by someone else",
			actorID: ownerID,
			listing: &entity.AdoptionListing{CatID: catID, UploaderID: uploaderID},
			wantErr: domainerrors.ErrNotCatOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatService(t)
			expectTx(t, fx.txManager, fx.repos)
			ctx := context.Background()

			fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, Name: "Mishmish", AddingUserID: &ownerID}, nil)
			if tt.listing != nil {
				fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(tt.listing, nil)
			} else {
				fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
			}
			if tt.wantErr == nil {
				fx.repos.cat.EXPECT().
					Update(ctx, mock.MatchedBy(func(c *entity.Cat) bool {
						return c.Name == newName && c.IsAddedBy(ownerID)
					})).
					Return(nil)
			}

			cat, err := fx.service.UpdateCat(ctx, tt.actorID, catID, &usecase.UpdateCatInput{Name: &newName})

			if tt.wantErr != nil {
				assert.Nil(t, cat)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, newName, cat.Name)
		})
	}
}

func TestCatService_DeleteCat_NotFound(t *testing.T) {
	fx := createTestCatService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	catID := uuid.New()
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(nil, repository.ErrCatNotFound)

	err := fx.service.DeleteCat(ctx, uuid.New(), catID)

	assert.True(t, errors.Is(err, domainerrors.ErrCatNotFound))
}

func TestCatService_DeleteCat(t *testing.T) {
	fx := createTestCatService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	ownerID := uuid.New()
	catID := uuid.New()
	fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
	fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
	fx.repos.cat.EXPECT().Delete(ctx, catID).Return(nil)

	require.NoError(t, fx.service.DeleteCat(ctx, ownerID, catID))
}

func TestCatService_UploadCatImage(t *testing.T) {
	ownerID := uuid.New()
	catID := uuid.New()
	input := &usecase.CatImageInput{Filename: "photo.JPG", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}

	t.Run("stores and records url", func(t *testing.T) {
		fx := createTestCatService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
		fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
		fx.storage.EXPECT().
			Upload(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "cats/"+catID.String()+"/") && strings.HasSuffix(key, ".jpg")
			}), "image/jpeg", input.Data).
			Return("https://cdn.example.com/cat.jpg", nil)
		fx.repos.cat.EXPECT().
			Update(ctx, mock.MatchedBy(func(c *entity.Cat) bool { return c.ImageURL == "https://cdn.example.com/cat.jpg" })).
			Return(nil)

		cat, err := fx.service.UploadCatImage(ctx, ownerID, catID, input)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cat.jpg", cat.ImageURL)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestCatService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil)
		fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
		fx.storage.EXPECT().Upload(ctx, mock.Anything, "image/jpeg", input.Data).Return("", errors.New("bucket unavailable"))

		cat, err := fx.service.UploadCatImage(ctx, ownerID, catID, input)

		assert.Nil(t, cat)
		assert.True(t, errors.Is(err, domainerrors.ErrImageUploadFailed))
	})

	t.Run("record failure removes object", func(t *testing.T) {
		fx := createTestCatService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		var storedKey string
		fx.repos.cat.EXPECT().FindByID(ctx, catID).Return(&entity.Cat{ID: catID, AddingUserID: &ownerID}, nil).Times(2)
		fx.repos.listing.EXPECT().FindByCatID(ctx, catID).Return(nil, repository.ErrListingNotFound)
		fx.storage.EXPECT().
			Upload(ctx, mock.Anything, "image/jpeg", input.Data).
			Run(func(_ context.Context, key string, _ string, _ []byte) { storedKey = key }).
			Return("https://cdn.example.com/cat.jpg", nil)
		fx.repos.cat.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Cat")).Return(errors.New("db down"))
		fx.storage.EXPECT().
			Delete(ctx, mock.MatchedBy(func(key string) bool { return key == storedKey })).
			Return(nil)

		cat, err := fx.service.UploadCatImage(ctx, ownerID, catID, input)

		assert.Nil(t, cat)
		assert.Error(t, err)
	})

	t.Run("rejects non-image", func(t *testing.T) {
		fx := createTestCatService(t)

		cat, err := fx.service.UploadCatImage(context.Background(), ownerID, catID, &usecase.CatImageInput{
			Filename:    "notes.txt",
			ContentType: "text/plain",
			Data:        []byte("hi"),
		})

		assert.Nil(t, cat)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
