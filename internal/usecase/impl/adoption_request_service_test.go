package impl

import (
	"context"
	"testing"

	"catrescue/internal/domain/entity"
	domainerrors "catrescue/internal/domain/errors"
	"catrescue/internal/domain/repository"
	"catrescue/internal/domain/service"
	mockRepo "catrescue/internal/mocks/repository"
	mockService "catrescue/internal/mocks/service"
	"catrescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service   usecase.AdoptionRequestUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
	repos     *mockRepos
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)

	return requestServiceFixtures{
		service:   NewAdoptionRequestService(txManager, publisher, nil, newDiscardLogger()),
		txManager: txManager,
		publisher: publisher,
		repos:     newMockRepos(t),
	}
}

// adoptionScenario is a listed cat with its contributor, uploader and an applicant.
type adoptionScenario struct {
	ownerID   uuid.UUID
	senderID  uuid.UUID
	cat       *entity.Cat
	listing   *entity.AdoptionListing
	sender    *entity.User
	requestID uuid.UUID
}

func newAdoptionScenario() adoptionScenario {
	ownerID := uuid.New()
	senderID := uuid.New()
	cat := &entity.Cat{ID: uuid.New(), Name: "Mishmish", AddingUserID: &ownerID}

	return adoptionScenario{
		ownerID:  ownerID,
		senderID: senderID,
		cat:      cat,
		listing: &entity.AdoptionListing{
			ID:         uuid.New(),
			CatID:      cat.ID,
			UploaderID: ownerID,
			IsActive:   true,
		},
		sender:    &entity.User{ID: senderID, Username: "sara", FullName: "Sara Ali"},
		requestID: uuid.New(),
	}
}

func (s adoptionScenario) input() *usecase.CreateRequestInput {
	return &usecase.CreateRequestInput{
		ListingID:         s.listing.ID,
		City:              "Riyadh",
		Age:               29,
		FullName:          "Sara Ali",
		ReasonForAdoption: "Company",
		LivingSituation:   "Apartment",
		ExperienceLevel:   entity.ExperienceMinimal,
	}
}

// captureNotifications assigns IDs on insert and records every notification written.
func captureNotifications(repo *mockRepo.MockNotificationRepository, ctx context.Context) *[]*entity.Notification {
	var created []*entity.Notification
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) {
			n.ID = uuid.New()
			created = append(created, n)
		}).
		Return(nil)

	return &created
}

func TestAdoptionRequestService_CreateRequest_NotifiesBothParties(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()

	fx.repos.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(s.listing, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, s.cat.ID).Return(s.cat, nil)
	fx.repos.request.EXPECT().FindByListingAndSender(ctx, s.listing.ID, s.senderID).Return(nil, repository.ErrRequestNotFound)
	fx.repos.user.EXPECT().FindByID(ctx, s.senderID).Return(s.sender, nil)
	fx.repos.request.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.AdoptionRequest) bool {
			return r.SenderID == s.senderID && r.ReceiverID == s.ownerID && r.Status == entity.RequestStatusPending
		})).
		Run(func(_ context.Context, r *entity.AdoptionRequest) { r.ID = s.requestID }).
		Return(nil)
	created := captureNotifications(fx.repos.notification, ctx)

	var events []*service.NotificationEvent
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, e *service.NotificationEvent) { events = append(events, e) }).
		Return(nil).
		Times(2)

	request, err := fx.service.CreateRequest(ctx, s.senderID, s.input())

	require.NoError(t, err)
	assert.Equal(t, s.requestID, request.ID)

	require.Len(t, *created, 2)
	assert.Equal(t, s.senderID, (*created)[0].UserID)
	assert.Equal(t, "Your adoption request for Mishmish has been submitted", (*created)[0].Message)
	assert.Equal(t, s.ownerID, (*created)[1].UserID)
	assert.Equal(t, "New adoption request for Mishmish from Sara Ali [REQUEST_ID:"+s.requestID.String()+"]", (*created)[1].Message)

	require.Len(t, events, 2)
	assert.Equal(t, (*created)[0].ID.String(), events[0].NotificationID)
	assert.Equal(t, s.ownerID.String(), events[1].UserID)
}

func TestAdoptionRequestService_CreateRequest_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()

	fx.repos.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(s.listing, nil)
	fx.repos.cat.EXPECT().FindByID(ctx, s.cat.ID).Return(s.cat, nil)
	fx.repos.request.EXPECT().FindByListingAndSender(ctx, s.listing.ID, s.senderID).Return(nil, repository.ErrRequestNotFound)
	fx.repos.user.EXPECT().FindByID(ctx, s.senderID).Return(s.sender, nil)
	fx.repos.request.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdoptionRequest")).Return(nil)
	captureNotifications(fx.repos.notification, ctx)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker down")).Times(2)

	request, err := fx.service.CreateRequest(ctx, s.senderID, s.input())

	require.NoError(t, err)
	assert.NotNil(t, request)
}

func TestAdoptionRequestService_CreateRequest_Errors(t *testing.T) {
	s := newAdoptionScenario()
	inactive := *s.listing
	inactive.IsActive = false

	tests := []struct {
		name    string
		actorID uuid.UUID
		setup   func(ctx context.Context, r *mockRepos)
		wantErr error
	}{
		{
			name:    "listing missing",
			actorID: s.senderID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(nil, repository.ErrListingNotFound)
			},
			wantErr: domainerrors.ErrListingNotFound,
		},
		{
			name:    "listing inactive",
			actorID: s.senderID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(&inactive, nil)
			},
			wantErr: domainerrors.ErrListingNotFound,
		},
		{
			name:    "self adoption",
			actorID: s.ownerID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(s.listing, nil)
				r.cat.EXPECT().FindByID(ctx, s.cat.ID).Return(s.cat, nil)
			},
			wantErr: domainerrors.ErrSelfAdoption,
		},
		{
			name:    "duplicate request",
			actorID: s.senderID,
			setup: func(ctx context.Context, r *mockRepos) {
				r.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(s.listing, nil)
				r.cat.EXPECT().FindByID(ctx, s.cat.ID).Return(s.cat, nil)
				r.request.EXPECT().FindByListingAndSender(ctx, s.listing.ID, s.senderID).Return(&entity.AdoptionRequest{}, nil)
			},
			wantErr: domainerrors.ErrRequestAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			tt.setup(ctx, fx.repos)

			request, err := fx.service.CreateRequest(ctx, tt.actorID, s.input())

			assert.Nil(t, request)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAdoptionRequestService_CreateRequest_InvalidExperience(t *testing.T) {
	fx := createTestRequestService(t)
	s := newAdoptionScenario()
	input := s.input()
	input.ExperienceLevel = "Expert"

	request, err := fx.service.CreateRequest(context.Background(), s.senderID, input)

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdoptionRequestService_ApplyAction(t *testing.T) {
	tests := []struct {
		name         string
		action       entity.RequestStatus
		wantSender   string
		wantReceiver string
	}{
		{
			name:         "accept",
			action:       entity.RequestStatusAccepted,
			wantSender:   "Your adoption request for Mishmish has been accepted!",
			wantReceiver: "You accepted the adoption request from Sara Ali for Mishmish",
		},
		{
			name:         "reject",
			action:       entity.RequestStatusRejected,
			wantSender:   "Your adoption request for Mishmish was rejected",
			wantReceiver: "You rejected the adoption request from Sara Ali for Mishmish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			s := newAdoptionScenario()
			pending := &entity.AdoptionRequest{
				ID:         s.requestID,
				ListingID:  s.listing.ID,
				SenderID:   s.senderID,
				ReceiverID: s.ownerID,
				Status:     entity.RequestStatusPending,
			}

			fx.repos.request.EXPECT().FindByID(ctx, s.requestID).Return(pending, nil)
			fx.repos.request.EXPECT().UpdateStatus(ctx, s.requestID, entity.RequestStatusPending, tt.action).Return(nil)
			fx.repos.listing.EXPECT().FindByID(ctx, s.listing.ID).Return(s.listing, nil)
			fx.repos.cat.EXPECT().FindByID(ctx, s.cat.ID).Return(s.cat, nil)
			fx.repos.user.EXPECT().FindByID(ctx, s.senderID).Return(s.sender, nil)
			created := captureNotifications(fx.repos.notification, ctx)
			fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil).Times(2)

			request, err := fx.service.ApplyAction(ctx, s.ownerID, s.requestID, tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.action, request.Status)
			require.Len(t, *created, 2)
			assert.Equal(t, s.senderID, (*created)[0].UserID)
			assert.Equal(t, tt.wantSender, (*created)[0].Message)
			assert.Equal(t, s.ownerID, (*created)[1].UserID)
			assert.Equal(t, tt.wantReceiver, (*created)[1].Message)
		})
	}
}

func TestAdoptionRequestService_ApplyAction_SameDecisionIsNoop(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()
	accepted := &entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: entity.RequestStatusAccepted}

	fx.repos.request.EXPECT().FindByID(ctx, s.requestID).Return(accepted, nil)

	request, err := fx.service.ApplyAction(ctx, s.ownerID, s.requestID, entity.RequestStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, request.Status)
}

func TestAdoptionRequestService_ApplyAction_Errors(t *testing.T) {
	s := newAdoptionScenario()

	tests := []struct {
		name    string
		actorID uuid.UUID
		action  entity.RequestStatus
		stored  *entity.AdoptionRequest
		wantErr error
	}{
		{
			name:    "unknown action",
			actorID: s.ownerID,
			action:  "Maybe",
			wantErr: domainerrors.ErrInvalidAction,
		},
		{
			name:    "pending is not an action",
			actorID: s.ownerID,
			action:  entity.RequestStatusPending,
			wantErr: domainerrors.ErrInvalidAction,
		},
		{
			name:    "not the receiver",
			actorID: s.senderID,
			action:  entity.RequestStatusAccepted,
			stored:  &entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: entity.RequestStatusPending},
			wantErr: domainerrors.ErrRequestNotFound,
		},
		{
			name:    "opposite decision",
			actorID: s.ownerID,
			action:  entity.RequestStatusRejected,
			stored:  &entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: entity.RequestStatusAccepted},
			wantErr: domainerrors.ErrRequestAlreadyDecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t)

			ctx := context.Background()
			if tt.stored != nil {
				expectTx(t, fx.txManager, fx.repos)
				fx.repos.request.EXPECT().FindByID(ctx, s.requestID).Return(tt.stored, nil)
			}

			request, err := fx.service.ApplyAction(ctx, tt.actorID, s.requestID, tt.action)

			assert.Nil(t, request)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestAdoptionRequestService_ApplyAction_ConcurrentDecisionLoses(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()
	pending := &entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: entity.RequestStatusPending}

	fx.repos.request.EXPECT().FindByID(ctx, s.requestID).Return(pending, nil)
	fx.repos.request.EXPECT().
		UpdateStatus(ctx, s.requestID, entity.RequestStatusPending, entity.RequestStatusRejected).
		Return(repository.ErrRequestStatusChanged)

	request, err := fx.service.ApplyAction(ctx, s.ownerID, s.requestID, entity.RequestStatusRejected)

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestAlreadyDecided), "got %v", err)
}

func TestAdoptionRequestService_DeleteRequest_DecidedConcurrently(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()
	fx.repos.request.EXPECT().FindByID(ctx, s.requestID).
		Return(&entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: entity.RequestStatusPending}, nil)
	fx.repos.request.EXPECT().DeletePending(ctx, s.requestID).Return(repository.ErrRequestStatusChanged)

	err := fx.service.DeleteRequest(ctx, s.senderID, s.requestID)

	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotPending), "got %v", err)
}

func TestAdoptionRequestService_GetRequest_Forbidden(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	s := newAdoptionScenario()
	fx.repos.request.EXPECT().FindByID(ctx, s.requestID).
		Return(&entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID}, nil)

	request, err := fx.service.GetRequest(ctx, uuid.New(), s.requestID)

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdoptionRequestService_DeleteRequest(t *testing.T) {
	s := newAdoptionScenario()

	tests := []struct {
		name    string
		actorID uuid.UUID
		status  entity.RequestStatus
		wantErr error
	}{
		{name: "sender withdraws", actorID: s.senderID, status: entity.RequestStatusPending},
		{name: "receiver dismisses", actorID: s.ownerID, status: entity.RequestStatusPending},
		{name: "decided", actorID: s.senderID, status: entity.RequestStatusAccepted, wantErr: domainerrors.ErrRequestNotPending},
		{name: "outsider", actorID: uuid.New(), status: entity.RequestStatusPending, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t)
			expectTx(t, fx.txManager, fx.repos)

			ctx := context.Background()
			fx.repos.request.EXPECT().FindByID(ctx, s.requestID).
				Return(&entity.AdoptionRequest{ID: s.requestID, SenderID: s.senderID, ReceiverID: s.ownerID, Status: tt.status}, nil)
			if tt.wantErr == nil {
				fx.repos.request.EXPECT().DeletePending(ctx, s.requestID).Return(nil)
			}

			err := fx.service.DeleteRequest(ctx, tt.actorID, s.requestID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdoptionRequestService_ListIncoming(t *testing.T) {
	fx := createTestRequestService(t)
	expectTx(t, fx.txManager, fx.repos)

	ctx := context.Background()
	receiverID := uuid.New()
	views := []*entity.IncomingRequestView{{SenderName: "Sara Ali"}}

	fx.repos.request.EXPECT().FindIncoming(ctx, receiverID, entity.RequestStatusPending).Return(views, nil)
	fx.repos.request.EXPECT().FindIncoming(ctx, receiverID, entity.RequestStatus("")).Return(views, nil)

	pending, err := fx.service.ListIncomingPending(ctx, receiverID)
	require.NoError(t, err)
	assert.Equal(t, views, pending)

	all, err := fx.service.ListIncomingAll(ctx, receiverID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
