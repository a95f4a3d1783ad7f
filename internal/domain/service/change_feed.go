package service

import (
	"context"

	"carebridge/internal/domain/entity"
)

// ActionListener receives inserted actions from the change feed.
type ActionListener func(ctx context.Context, action *entity.ActionRecord)

// ChangeFeed fans inserted actions out to in-process listeners.
type ChangeFeed interface {
	// Subscribe attaches a listener. The returned func detaches it; after it
	// returns no new deliveries start for the listener.
	Subscribe(listener ActionListener) (unsubscribe func())

	// Dispatch hands an inserted action to every attached listener, each on
	// its own goroutine. It does not wait for listeners to finish.
	Dispatch(ctx context.Context, action *entity.ActionRecord)
}
