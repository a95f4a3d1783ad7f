package pubsub

import (
	"context"
	"log/slog"

	"carebridge/config"
	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inProcessPublisher hands events straight to the local change feed
type inProcessPublisher struct {
	feed service.ChangeFeed
}

// NewInProcessPublisher creates a publisher that dispatches on the in-process broker
func NewInProcessPublisher(feed service.ChangeFeed) service.EventPublisher {
	return &inProcessPublisher{feed: feed}
}

func (p *inProcessPublisher) PublishActionEvent(ctx context.Context, event *service.ActionEvent) error {
	if event == nil || event.Action == nil {
		return errors.New("action event has no action")
	}
	p.feed.Dispatch(ctx, event.Action)

	return nil
}

func (p *inProcessPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderInProcess:
		logger.Info("Using in-process change feed publisher")

		publisher = NewInProcessPublisher(params.Feed)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// ReceiverParams holds dependencies for the pull receiver, injected by Fx
type ReceiverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// StartReceiver pulls the configured subscription into the change feed for
// the google provider. Other providers need no receiver.
func StartReceiver(params ReceiverParams) error {
	cfg := params.Config.PubSub
	if cfg.Provider != constants.PubSubProviderGoogle || cfg.SubscriptionID == "" {
		return nil
	}

	receiver, err := NewReceiver(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, params.Feed, params.Logger)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(params.Ctx))
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := receiver.Run(runCtx); err != nil {
					params.Logger.Error("[GooglePubSub] Receiver stopped", slog.Any("error", err))
				}
			}()
			params.Logger.Info("Pub/Sub receiver started", slog.String("subscription_id", cfg.SubscriptionID))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}

			return receiver.Close()
		},
	})

	return nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
	fx.Invoke(StartReceiver),
)
