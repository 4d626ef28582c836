package pubsub

import (
	"context"
	"log/slog"
	"slices"

	"pumpdesk/config"
	"pumpdesk/internal/domain/constants"
	"pumpdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no broker is configured. Reset confirmations
// and recorded sales are still traceable through the debug log.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.LogAttrs(ctx, slog.LevelDebug, "Event publishing disabled, dropping event",
		slog.String("event_type", event.Type),
		slog.String("subject_id", event.SubjectID),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// filteredPublisher forwards only the event types enabled in configuration.
type filteredPublisher struct {
	next    service.EventPublisher
	enabled []string
}

func (p *filteredPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	if !slices.Contains(p.enabled, event.Type) {
		return nil
	}

	return p.next.Publish(ctx, event)
}

func (p *filteredPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the broker for PasswordResetConfirmed and
// TransactionRecorded events and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, domain events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	for _, eventType := range cfg.Events {
		if !slices.Contains(constants.EventTypes, eventType) {
			return nil, errors.Errorf("unknown event type in pubsub.events: %s", eventType)
		}
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if len(cfg.Events) > 0 {
		logger.Info("Publishing a subset of domain events", slog.Any("events", cfg.Events))
		publisher = &filteredPublisher{next: publisher, enabled: cfg.Events}
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing domain events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing domain events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
