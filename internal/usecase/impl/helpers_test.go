package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catrescue/internal/domain/repository"
	mockRepo "catrescue/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockRepos bundles one mock per repository. Expectations are set per test.
type mockRepos struct {
	user         *mockRepo.MockUserRepository
	cat          *mockRepo.MockCatRepository
	pin          *mockRepo.MockPinRepository
	listing      *mockRepo.MockAdoptionListingRepository
	request      *mockRepo.MockAdoptionRequestRepository
	notification *mockRepo.MockNotificationRepository
	activity     *mockRepo.MockActivityLogRepository
	device       *mockRepo.MockDeviceRepository
}

func newMockRepos(t *testing.T) *mockRepos {
	return &mockRepos{
		user:         mockRepo.NewMockUserRepository(t),
		cat:          mockRepo.NewMockCatRepository(t),
		pin:          mockRepo.NewMockPinRepository(t),
		listing:      mockRepo.NewMockAdoptionListingRepository(t),
		request:      mockRepo.NewMockAdoptionRequestRepository(t),
		notification: mockRepo.NewMockNotificationRepository(t),
		activity:     mockRepo.NewMockActivityLogRepository(t),
		device:       mockRepo.NewMockDeviceRepository(t),
	}
}

func (r *mockRepos) factory(t *testing.T) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(r.user).Maybe()
	factory.EXPECT().CatRepo().Return(r.cat).Maybe()
	factory.EXPECT().PinRepo().Return(r.pin).Maybe()
	factory.EXPECT().ListingRepo().Return(r.listing).Maybe()
	factory.EXPECT().RequestRepo().Return(r.request).Maybe()
	factory.EXPECT().NotificationRepo().Return(r.notification).Maybe()
	factory.EXPECT().ActivityRepo().Return(r.activity).Maybe()
	factory.EXPECT().DeviceRepo().Return(r.device).Maybe()

	return factory
}

// expectTx makes every Execute call run its closure against repos and return
// the closure's error, as the real transaction manager does.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, repos *mockRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory(t))
		})
}
