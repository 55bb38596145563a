package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catrescue/config"
	"catrescue/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishNotificationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: uuid.NewString(),
		UserID:         uuid.NewString(),
		Message:        "Your adoption request for Mishmish was accepted",
		CreatedAt:      time.Now().UTC(),
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.NotificationID, received.Message.MessageID)
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, eventTypeNotificationCreated, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Message, decoded.Message)
	assert.Equal(t, event.UserID, decoded.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n"})

	assert.Error(t, err)
}

func TestLocalHTTPPublisher_RejectsEventWithoutID(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{UserID: "u"})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{"not configured", nil, false},
		{"local", &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, false},
		{"local without endpoint", &config.PubSubConfig{Provider: "local"}, true},
		{"google without project", &config.PubSubConfig{Provider: "google", TopicID: "t"}, true},
		{"google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "p"}, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
