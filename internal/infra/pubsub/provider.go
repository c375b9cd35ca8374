// Package pubsub publishes bookmark events for the bookmark worker.
package pubsub

import (
	"context"
	"log/slog"

	"waffer/config"
	"waffer/internal/domain/constants"
	"waffer/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured; bookmark counters then
// stay at their stored value.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishBookmarkEvent(_ context.Context, event *service.BookmarkEvent) error {
	p.logger.Debug("Bookmark event dropped, pubsub disabled",
		slog.String("event_id", event.EventID),
		slog.String("offer_id", event.OfferID),
		slog.Bool("liked", event.Liked),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for pubsub.provider. The google provider
// falls back to the Firebase project when pubsub.projectId is empty.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, bookmark events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, cfg, projectFallback(params.Config), logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing bookmark event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, fallbackProject string, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing bookmark events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, nil, logger), nil

	case constants.PubSubProviderGoogle:
		projectID := cfg.ProjectID
		if projectID == "" {
			projectID = fallbackProject
		}
		if projectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Publishing bookmark events to Google Pub/Sub",
			slog.String("project_id", projectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, projectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

func projectFallback(cfg *config.Config) string {
	if cfg.Firebase == nil {
		return ""
	}

	return cfg.Firebase.ProjectID
}
