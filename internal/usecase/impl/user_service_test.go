package impl

import (
	"context"
	"testing"
	"time"

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

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	repos        *mockRepos
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(txManager, hasher, tokenService, nil, newDiscardLogger())

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		repos:        newMockRepos(t),
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username: "whiskers_fan",
		Password: "Secret123",
		FullName: "Layla Hassan",
		Email:    "Layla@Example.com",
		Phone:    "+966501234567",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.repos.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(nil, repository.ErrUserNotFound)
	fx.repos.user.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
	fx.repos.user.EXPECT().FindByPhone(ctx, "+966501234567").Return(nil, repository.ErrUserNotFound)
	fx.repos.user.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "layla@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestUserService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(ctx context.Context, r *mockRepos)
		wantErr error
	}{
		{
			name: "username taken",
			setup: func(ctx context.Context, r *mockRepos) {
				r.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(&entity.User{}, nil)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name: "email taken",
			setup: func(ctx context.Context, r *mockRepos) {
				r.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().FindByEmail(ctx, "layla@example.com").Return(&entity.User{}, nil)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name: "phone taken",
			setup: func(ctx context.Context, r *mockRepos) {
				r.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().FindByPhone(ctx, "+966501234567").Return(&entity.User{}, nil)
			},
			wantErr: domainerrors.ErrPhoneTaken,
		},
		{
			name: "insert race",
			setup: func(ctx context.Context, r *mockRepos) {
				r.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().FindByEmail(ctx, "layla@example.com").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().FindByPhone(ctx, "+966501234567").Return(nil, repository.ErrUserNotFound)
				r.user.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
			tt.setup(ctx, fx.repos)

			user, err := fx.service.Register(ctx, validRegisterInput())

			assert.Nil(t, user)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high"))

	user, err := fx.service.Register(context.Background(), validRegisterInput())

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "whiskers_fan", PasswordHash: "hashed"}

	fx.repos.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(user, nil)
	fx.hasher.EXPECT().Check("Secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("token", time.Now().Add(time.Hour), nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: " whiskers_fan ", Password: "Secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "Secret123"})

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByUsername(ctx, "whiskers_fan").Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "whiskers_fan", Password: "wrong"})

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	missing := uuid.New()
	fx.repos.user.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, missing)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	current := func() *entity.User {
		return &entity.User{
			ID:       userID,
			Username: "whiskers_fan",
			FullName: "Layla",
			Email:    "layla@example.com",
			Phone:    "+966501234567",
		}
	}
	strPtr := func(s string) *string { return &s }

	t.Run("changes name and email", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		fx.repos.user.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		fx.repos.user.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "new@example.com" && u.FullName == "Layla Hassan"
			})).
			Return(nil)

		user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
			FullName: strPtr("Layla Hassan"),
			Email:    strPtr("New@Example.com"),
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("unchanged email skips uniqueness check", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		fx.repos.user.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Email: strPtr("layla@example.com")})

		require.NoError(t, err)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		fx.repos.user.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Email: strPtr("taken@example.com")})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})

	t.Run("phone taken", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.repos.user.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		fx.repos.user.EXPECT().FindByPhone(ctx, "+966500000000").Return(&entity.User{ID: uuid.New()}, nil)

		user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: strPtr("+966500000000")})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domainerrors.ErrPhoneTaken))
	})

	t.Run("password is rehashed", func(t *testing.T) {
		fx := createTestUserService(t)
		expectTx(t, fx.txManager, fx.repos)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("NewSecret1").Return("rehashed", nil)
		fx.repos.user.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		fx.repos.user.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "rehashed" })).
			Return(nil)

		_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Password: strPtr("NewSecret1")})

		require.NoError(t, err)
	})
}
