package pubsub

import (
	"context"
	"log/slog"

	"carebridge/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// Receiver pulls action events from a Pub/Sub subscription into the change feed.
// It is the pull counterpart of the worker's push endpoint.
type Receiver struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	feed       service.ChangeFeed
	logger     *slog.Logger
}

// NewReceiver creates a receiver for subscriptionID
func NewReceiver(ctx context.Context, projectID, subscriptionID string, feed service.ChangeFeed, logger *slog.Logger) (*Receiver, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Receiver{
		client:     client,
		subscriber: client.Subscriber(subscriptionID),
		feed:       feed,
		logger:     logger,
	}, nil
}

// Run receives until ctx is cancelled. Undecodable messages are acked and
// dropped so they are not redelivered forever.
func (r *Receiver) Run(ctx context.Context) error {
	err := r.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		r.handle(ctx, msg.Data)
		msg.Ack()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "pubsub receive failed")
	}

	return nil
}

func (r *Receiver) handle(ctx context.Context, data []byte) {
	event, err := DecodeEvent(data)
	if err != nil {
		r.logger.Warn("[GooglePubSub] Dropping malformed action event", slog.Any("error", err))

		return
	}
	if event.Type != service.ActionEventInsert {
		return
	}

	r.feed.Dispatch(ctx, event.Action)
}

// Close releases the Pub/Sub client
func (r *Receiver) Close() error {
	return errors.WithStack(r.client.Close())
}
