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

	"waffer/config"
	"waffer/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.BookmarkEvent {
	return &service.BookmarkEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		UserKey:    "amel@example.com",
		OfferID:    "offer-1",
		Liked:      true,
		OccurredAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishBookmarkEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, server.Client(), newTestLogger())
	require.NoError(t, publisher.PublishBookmarkEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "2025-11-03T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"offer_id":   "offer-1",
		"liked":      "true",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.BookmarkEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, server.Client(), newTestLogger())
	err := publisher.PublishBookmarkEvent(context.Background(), testEvent())

	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub   *config.PubSubConfig
		firebase *config.FirebaseConfig
		wantErr  string
	}{
		{name: "not configured"},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9090/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "waffer"}, wantErr: "topic ID is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "bookmarks"}, wantErr: "project ID is required"},
		{name: "google project from firebase without topic", pubsub: &config.PubSubConfig{Provider: "google"}, firebase: &config.FirebaseConfig{ProjectID: "waffer"}, wantErr: "topic ID is required"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub, Firebase: tt.firebase},
				Logger: newTestLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NoError(t, publisher.Close())
		})
	}
}
