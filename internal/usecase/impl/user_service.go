// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	"catrescue/internal/infra/metrics"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const tokenTypeBearer = "bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		metrics:      m,
		logger:       logger,
	}
}

// Register creates an account after checking the unique columns.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.logger.Info("Starting user registration", "username", input.Username)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Username and email must be free
		if err := ensureUserAbsent(ctx, userRepo.FindByUsername, user.Username, domainerrors.ErrUserAlreadyExists); err != nil {
			return err
		}
		if err := ensureUserAbsent(ctx, userRepo.FindByEmail, user.Email, domainerrors.ErrUserAlreadyExists); err != nil {
			return err
		}
		if err := ensureUserAbsent(ctx, userRepo.FindByPhone, user.Phone, domainerrors.ErrPhoneTaken); err != nil {
			return err
		}

		// 2. Insert; the unique indexes close any race with a concurrent registration
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "user already exists")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.metrics.IncrementUsersRegistered()
	srv.logger.Info("User registered", "userID", user.ID)

	return user, nil
}

// Login verifies credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByUsername(ctx, strings.TrimSpace(input.Username))
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Info("Login rejected", "userID", user.ID)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, _, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}

// GetProfile returns the caller's account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update. Email and phone stay unique across accounts.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	var passwordHash string
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		passwordHash = hashed
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Check uniqueness of changed contact fields
		if input.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*input.Email))
			if email != foundUser.Email {
				if err := ensureUserAbsent(ctx, userRepo.FindByEmail, email, domainerrors.ErrEmailTaken); err != nil {
					return err
				}
				foundUser.Email = email
			}
		}
		if input.Phone != nil {
			phone := strings.TrimSpace(*input.Phone)
			if phone != foundUser.Phone {
				if err := ensureUserAbsent(ctx, userRepo.FindByPhone, phone, domainerrors.ErrPhoneTaken); err != nil {
					return err
				}
				foundUser.Phone = phone
			}
		}

		// 3. Copy the remaining fields
		if input.FullName != nil {
			foundUser.FullName = strings.TrimSpace(*input.FullName)
		}
		if input.ProfilePictureURL != nil {
			foundUser.ProfilePictureURL = *input.ProfilePictureURL
		}
		if passwordHash != "" {
			foundUser.PasswordHash = passwordHash
		}

		// 4. Save
		if err := userRepo.Update(ctx, foundUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrConflict, "email or phone already in use")
			}

			return errors.Wrap(err, "failed to update user profile")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// ensureUserAbsent fails with conflict when lookup finds an account for value.
func ensureUserAbsent(
	ctx context.Context,
	lookup func(context.Context, string) (*entity.User, error),
	value string,
	conflict *domainerrors.BaseError,
) error {
	_, err := lookup(ctx, value)
	if err == nil {
		return errors.Wrap(conflict, "user already exists")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check existing user")
	}

	return nil
}
