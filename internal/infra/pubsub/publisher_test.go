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

	"pumpdesk/config"
	"pumpdesk/internal/domain/constants"
	"pumpdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.DomainEvent{
		RequestID:  "req-1",
		Type:       constants.EventPasswordResetConfirmed,
		SubjectID:  "6f1c1c3e-2a7e-4c55-9a53-0d2f6fb0b3a1",
		OccurredAt: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		Attributes: map[string]string{"email": "owner@example.com"},
	}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventPasswordResetConfirmed, received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.SubjectID, decoded.SubjectID)
	assert.Equal(t, "owner@example.com", decoded.Attributes["email"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.Publish(context.Background(), &service.DomainEvent{Type: constants.EventTransactionRecorded})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("not configured uses noop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: testLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.Publish(context.Background(), &service.DomainEvent{Type: "x"}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			Logger: testLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
			Logger: testLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			Logger: testLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:  fxtest.NewLifecycle(t),
			Ctx: context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{
				Provider:      constants.PubSubProviderLocal,
				LocalEndpoint: "http://localhost:0",
				Events:        []string{"pump.deleted"},
			}},
			Logger: testLogger(),
		})
		assert.ErrorContains(t, err, "pump.deleted")
	})

	t.Run("local provider", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:0"}},
			Logger: testLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
		lc.RequireStart().RequireStop()
	})
}

func TestNewEventPublisher_PublishesOnlyEnabledEvents(t *testing.T) {
	var received []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		received = append(received, msg.Message.Attributes["event_type"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: server.URL,
			Events:        []string{constants.EventPasswordResetConfirmed},
		}},
		Logger: testLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &filteredPublisher{}, publisher)

	ctx := context.Background()
	require.NoError(t, publisher.Publish(ctx, &service.DomainEvent{Type: constants.EventTransactionRecorded, SubjectID: "TRX20240115100000-A"}))
	require.NoError(t, publisher.Publish(ctx, &service.DomainEvent{Type: constants.EventPasswordResetConfirmed, SubjectID: "acc-1"}))

	assert.Equal(t, []string{constants.EventPasswordResetConfirmed}, received)
	lc.RequireStart().RequireStop()
}
