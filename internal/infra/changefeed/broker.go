package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Broker is the in-process change feed. Every delivery runs on its own
// goroutine so slow listeners never hold up others.
type Broker struct {
	logger *slog.Logger

	mu        sync.RWMutex
	listeners map[uint64]service.ActionListener
	nextID    uint64
	closed    bool

	inflight sync.WaitGroup
}

// NewBroker creates an empty broker
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		logger:    logger,
		listeners: make(map[uint64]service.ActionListener),
	}
}

func (b *Broker) Subscribe(listener service.ActionListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[id] = listener

	return sync.OnceFunc(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	})
}

func (b *Broker) Dispatch(ctx context.Context, action *entity.ActionRecord) {
	if action == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.logger.Warn("[ChangeFeed] Broker closed, dropping action", slog.String("action_id", action.ID.String()))

		return
	}

	// Deliveries outlive the request that carried the event
	deliveryCtx := context.WithoutCancel(ctx)
	for _, listener := range b.listeners {
		b.inflight.Add(1)
		go b.deliver(deliveryCtx, listener, action)
	}
}

func (b *Broker) deliver(ctx context.Context, listener service.ActionListener, action *entity.ActionRecord) {
	defer b.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("[ChangeFeed] Listener panicked",
				slog.String("action_id", action.ID.String()),
				slog.Any("panic", r),
			)
		}
	}()

	listener(ctx, action)
}

// Listeners returns the number of attached listeners
func (b *Broker) Listeners() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners)
}

// Close stops accepting events and waits for in-flight deliveries or ctx.
func (b *Broker) Close(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for change feed deliveries")
	}
}

// BrokerParams holds dependencies for the broker, injected by Fx
type BrokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewChangeFeed provides the broker as the process change feed and drains it on shutdown
func NewChangeFeed(params BrokerParams) (*Broker, service.ChangeFeed) {
	broker := NewBroker(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Draining change feed")

			return broker.Close(ctx)
		},
	})

	return broker, broker
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeFeed),
)
