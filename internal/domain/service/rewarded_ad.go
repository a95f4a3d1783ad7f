package service

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// AdEventHandler handles a single rewarded ad callback.
type AdEventHandler func(event entity.AdEvent)

// RewardedAd is one rewarded ad instance. Callbacks may arrive on any goroutine.
type RewardedAd interface {
	// ID identifies this ad instance.
	ID() uuid.UUID

	// On registers the handler for events of the given type and returns a func removing it.
	On(eventType entity.AdEventType, handler AdEventHandler) (off func())

	// Load starts loading the ad; completion is signalled through AdEventLoaded or AdEventError.
	Load(ctx context.Context) error

	// Show presents a loaded ad.
	Show(ctx context.Context) error

	// Destroy detaches every handler and releases the ad.
	Destroy()
}

// RewardedAdFactory creates rewarded ads for a user.
type RewardedAdFactory interface {
	NewRewardedAd(ctx context.Context, userID uuid.UUID) (RewardedAd, error)
}

// AdEventReporter routes ad events reported by a device to the user's live ad.
type AdEventReporter interface {
	Dispatch(ctx context.Context, userID uuid.UUID, event entity.AdEvent) error
}
