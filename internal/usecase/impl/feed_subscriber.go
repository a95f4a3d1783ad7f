package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
)

// FeedDependencies are the collaborators shared by every feed subscriber.
type FeedDependencies struct {
	Feed        service.ChangeFeed
	Family      usecase.FamilyUsecase
	Permissions usecase.PermissionUsecase
	Sink        usecase.NotificationSink
	Metrics     service.CoordinatorMetrics
	Logger      *slog.Logger
}

type activeSubscription struct {
	handle      *usecase.SubscriptionHandle
	unsubscribe func()
	cancel      context.CancelFunc
}

type feedSubscriber struct {
	deps FeedDependencies

	mu     sync.Mutex
	active *activeSubscription
}

// NewFeedSubscriber creates a subscriber with no active subscription.
func NewFeedSubscriber(deps FeedDependencies) usecase.FeedSubscriber {
	return &feedSubscriber{deps: deps}
}

func (s *feedSubscriber) Start(ctx context.Context, userID uuid.UUID, role entity.Role) (*usecase.SubscriptionHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	handle := &usecase.SubscriptionHandle{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		StartedAt: time.Now().UTC(),
	}

	// The subscription outlives the request that started it
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	unsubscribe := s.deps.Feed.Subscribe(func(eventCtx context.Context, action *entity.ActionRecord) {
		if subCtx.Err() != nil {
			return
		}

		// Stopping the subscription cancels in-flight handling
		eventCtx, cancelEvent := context.WithCancel(eventCtx)
		stop := context.AfterFunc(subCtx, cancelEvent)
		defer func() {
			stop()
			cancelEvent()
		}()

		s.handle(eventCtx, handle, action)
	})

	s.active = &activeSubscription{
		handle:      handle,
		unsubscribe: unsubscribe,
		cancel:      cancel,
	}

	s.deps.Logger.Info("[Feed] Subscription started",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
		slog.String("subscription_id", handle.ID.String()),
	)

	return handle, nil
}

func (s *feedSubscriber) Stop(handle *usecase.SubscriptionHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle == nil || s.active == nil || s.active.handle.ID != handle.ID {
		return
	}
	s.stopLocked()
}

func (s *feedSubscriber) Active() *usecase.SubscriptionHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}

	return s.active.handle
}

// stopLocked detaches the listener before cancelling in-flight handling.
func (s *feedSubscriber) stopLocked() {
	if s.active == nil {
		return
	}

	s.active.unsubscribe()
	s.active.cancel()

	s.deps.Logger.Info("[Feed] Subscription stopped",
		slog.String("user_id", s.active.handle.UserID.String()),
		slog.String("subscription_id", s.active.handle.ID.String()),
	)
	s.active = nil
}

func (s *feedSubscriber) handle(ctx context.Context, handle *usecase.SubscriptionHandle, action *entity.ActionRecord) {
	if action == nil {
		return
	}

	logger := s.deps.Logger.With(
		slog.String("user_id", handle.UserID.String()),
		slog.String("action_id", action.ID.String()),
		slog.String("kind", string(action.Kind)),
	)

	if isSelfOriginated(handle, action) {
		logger.Debug("[Feed] Skipping: sent by me")
		s.deps.Metrics.NotificationDropped(service.DropReasonSelf)

		return
	}

	relevant, err := s.isRelevant(ctx, handle, action)
	if err != nil {
		logger.Warn("[Feed] Relevance lookup failed, dropping event", slog.Any("error", err))
		s.deps.Metrics.NotificationDropped(service.DropReasonLookup)

		return
	}
	if !relevant {
		logger.Debug("[Feed] Skipping: not for me")
		s.deps.Metrics.NotificationDropped(service.DropReasonIrrelevant)

		return
	}

	senderName := s.resolveSender(ctx, handle, action)
	content := SelectContent(action.Kind, senderName, action.TextMessage)

	status, err := s.deps.Permissions.Current(ctx, handle.UserID)
	if err != nil || status != entity.PermissionGranted {
		logger.Debug("[Feed] Skipping: notification permission not granted",
			slog.String("permission", string(status)),
			slog.Any("error", err),
		)
		s.deps.Metrics.NotificationDropped(service.DropReasonPermission)

		return
	}

	// Stopped while resolving
	if ctx.Err() != nil {
		return
	}

	event := &entity.NotificationEvent{
		ActionID:            action.ID,
		RecipientID:         handle.UserID,
		Kind:                action.Kind,
		SenderName:          senderName,
		NotificationContent: content,
	}
	if err := s.deps.Sink.Deliver(ctx, event); err != nil {
		logger.Warn("[Feed] Notification delivery failed", slog.Any("error", err))
		s.deps.Metrics.NotificationDropped(service.DropReasonSink)

		return
	}

	logger.Info("[Feed] Notification delivered", slog.String("title", content.Title))
	s.deps.Metrics.NotificationDelivered(action.Kind)
}

// isSelfOriginated decides whether the session user caused the action.
// Parents rely on the originator convention; guardians on the sender id.
func isSelfOriginated(handle *usecase.SubscriptionHandle, action *entity.ActionRecord) bool {
	if handle.Role == entity.RoleParent {
		return action.OriginatedByParent()
	}

	return action.SenderGuardianID == handle.UserID
}

func (s *feedSubscriber) isRelevant(ctx context.Context, handle *usecase.SubscriptionHandle, action *entity.ActionRecord) (bool, error) {
	if handle.Role == entity.RoleParent {
		return action.RecipientParentID == handle.UserID, nil
	}

	groupIDs, err := s.deps.Family.GuardianGroupIDs(ctx, handle.UserID)
	if err != nil {
		return false, err
	}

	return slices.Contains(groupIDs, action.GroupID), nil
}

func (s *feedSubscriber) resolveSender(ctx context.Context, handle *usecase.SubscriptionHandle, action *entity.ActionRecord) string {
	if handle.Role == entity.RoleParent {
		return s.deps.Family.DisplayName(ctx, action.SenderGuardianID, fallbackGuardianLabel)
	}

	return s.deps.Family.DisplayName(ctx, action.RecipientParentID, fallbackParentLabel)
}
