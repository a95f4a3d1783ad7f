package usecase

import (
	"context"
	"time"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionHandle identifies one active change-feed subscription
type SubscriptionHandle struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Role      entity.Role `json:"role"`
	StartedAt time.Time   `json:"started_at"`
}

// FeedSubscriber watches the change feed for a single session.
// At most one subscription is active per subscriber.
type FeedSubscriber interface {
	// Start attaches a new subscription, stopping the active one first.
	Start(ctx context.Context, userID uuid.UUID, role entity.Role) (*SubscriptionHandle, error)

	// Stop detaches the subscription identified by handle. Stale handles are ignored.
	Stop(handle *SubscriptionHandle)

	// Active returns the current subscription, nil when stopped.
	Active() *SubscriptionHandle
}

// NotificationSink hands a built notification to the recipient's devices
type NotificationSink interface {
	Deliver(ctx context.Context, event *entity.NotificationEvent) error
}

// NotificationUsecase manages notification sessions per user
type NotificationUsecase interface {
	// StartSession starts (or restarts) the change-feed subscription of a user
	StartSession(ctx context.Context, userID uuid.UUID, role entity.Role) (*SubscriptionHandle, error)

	// StopSession stops the user's subscription
	StopSession(ctx context.Context, userID uuid.UUID) error

	// ActiveSession returns the user's active subscription
	ActiveSession(userID uuid.UUID) (*SubscriptionHandle, bool)

	// Close stops every session
	Close()
}
