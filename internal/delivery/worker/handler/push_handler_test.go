package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catrescue/internal/domain/entity"
	"catrescue/internal/domain/service"
	"catrescue/internal/infra/metrics"
	mockRepo "catrescue/internal/mocks/repository"
	mockService "catrescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler    *PushHandler
	pushSvc    *mockService.MockPushService
	deviceRepo *mockRepo.MockDeviceRepository
	metrics    *metrics.Metrics
}

func newPushFixture(t *testing.T) *pushFixture {
	pushSvc := mockService.NewMockPushService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	return &pushFixture{
		handler: &PushHandler{
			verifyToken: func(*http.Request) error { return nil },
			logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
			metrics:     m,
			pushSvc:     pushSvc,
			deviceRepo:  deviceRepo,
		},
		pushSvc:    pushSvc,
		deviceRepo: deviceRepo,
		metrics:    m,
	}
}

func pushBody(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func (f *pushFixture) serve(body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = f.handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversToActiveDevices(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()
	event := &service.NotificationEvent{
		NotificationID: uuid.NewString(),
		UserID:         userID.String(),
		Message:        "Your adoption request for Luna has been accepted!",
		CreatedAt:      time.Now(),
	}

	goodDevice := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "good", IsActive: true}
	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "stale", IsActive: true}
	f.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{goodDevice, staleDevice}, nil).Once()
	f.pushSvc.EXPECT().SendBatch(mock.Anything, []string{"good", "stale"}, &service.PushMessage{
		Title: pushTitle,
		Body:  event.Message,
		Data:  map[string]string{"notification_id": event.NotificationID, "user_id": event.UserID},
	}).Return(&service.PushBatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale"}}, nil).Once()
	f.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, userID, []string{"stale"}).Return(int64(1), nil).Once()

	rec := f.serve(pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.PushDeliveries.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.PushDeliveries.WithLabelValues("failure")), 0)
}

func TestPushHandler_BatchesLargeFanOut(t *testing.T) {
	f := newPushFixture(t)
	userID := uuid.New()

	devices := make([]*entity.UserDevice, 0, pushBatchSize+1)
	for i := range pushBatchSize + 1 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("tok-%d", i)})
	}
	f.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, userID).Return(devices, nil).Once()
	f.pushSvc.EXPECT().SendBatch(mock.Anything, mock.MatchedBy(func(tokens []string) bool {
		return len(tokens) == pushBatchSize
	}), mock.Anything).Return(&service.PushBatchResult{SuccessCount: pushBatchSize}, nil).Once()
	f.pushSvc.EXPECT().SendBatch(mock.Anything, []string{fmt.Sprintf("tok-%d", pushBatchSize)}, mock.Anything).
		Return(nil, errors.New("fcm unavailable")).Once()

	rec := f.serve(pushBody(t, &service.NotificationEvent{NotificationID: uuid.NewString(), UserID: userID.String(), Message: "hi"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, pushBatchSize, testutil.ToFloat64(f.metrics.PushDeliveries.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.PushDeliveries.WithLabelValues("failure")), 0)
}

func TestPushHandler_Outcomes(t *testing.T) {
	userID := uuid.New()
	event := &service.NotificationEvent{NotificationID: uuid.NewString(), UserID: userID.String(), Message: "hi"}

	t.Run("device lookup failure asks for redelivery", func(t *testing.T) {
		f := newPushFixture(t)
		f.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, userID).Return(nil, errors.New("db down")).Once()

		assert.Equal(t, http.StatusServiceUnavailable, f.serve(pushBody(t, event)).Code)
	})

	t.Run("no devices is acknowledged", func(t *testing.T) {
		f := newPushFixture(t)
		f.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, userID).Return(nil, nil).Once()

		assert.Equal(t, http.StatusOK, f.serve(pushBody(t, event)).Code)
	})

	t.Run("bad user id is acknowledged", func(t *testing.T) {
		f := newPushFixture(t)

		rec := f.serve(pushBody(t, &service.NotificationEvent{NotificationID: "n", UserID: "nope"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		f := newPushFixture(t)

		rec := f.serve(`{"message":{"data":"%%%"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unverified push", func(t *testing.T) {
		f := newPushFixture(t)
		f.handler.verifyPushAuth = true
		f.handler.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

		assert.Equal(t, http.StatusUnauthorized, f.serve(pushBody(t, event)).Code)
	})
}
