package impl

import (
	"context"
	"log/slog"
	"sync"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// NotificationServiceParams holds dependencies for the notification session registry, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Feed        service.ChangeFeed
	Family      usecase.FamilyUsecase
	Permissions usecase.PermissionUsecase
	Sink        usecase.NotificationSink
	Metrics     service.CoordinatorMetrics
	Logger      *slog.Logger
}

type notificationService struct {
	deps FeedDependencies

	mu       sync.Mutex
	sessions map[uuid.UUID]usecase.FeedSubscriber
}

// NewNotificationService creates the registry owning one feed subscriber per user
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deps: FeedDependencies{
			Feed:        params.Feed,
			Family:      params.Family,
			Permissions: params.Permissions,
			Sink:        params.Sink,
			Metrics:     params.Metrics,
			Logger:      params.Logger,
		},
		sessions: make(map[uuid.UUID]usecase.FeedSubscriber),
	}
}

func (s *notificationService) StartSession(ctx context.Context, userID uuid.UUID, role entity.Role) (*usecase.SubscriptionHandle, error) {
	if role != entity.RoleParent && role != entity.RoleGuardian {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "role %q cannot receive action notifications", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, ok := s.sessions[userID]
	if !ok {
		subscriber = NewFeedSubscriber(s.deps)
		s.sessions[userID] = subscriber
	}

	return subscriber.Start(ctx, userID, role)
}

func (s *notificationService) StopSession(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, ok := s.sessions[userID]
	if !ok {
		return errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	subscriber.Stop(subscriber.Active())
	delete(s.sessions, userID)

	return nil
}

func (s *notificationService) ActiveSession(userID uuid.UUID) (*usecase.SubscriptionHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriber, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}

	handle := subscriber.Active()

	return handle, handle != nil
}

func (s *notificationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, subscriber := range s.sessions {
		subscriber.Stop(subscriber.Active())
		delete(s.sessions, userID)
	}
}

type pushNotificationSink struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewPushNotificationSink delivers notification events to the recipient's active devices.
// notificationSvc may be nil when push is not configured; events are then only logged.
func NewPushNotificationSink(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationSink {
	return &pushNotificationSink{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *pushNotificationSink) Deliver(ctx context.Context, event *entity.NotificationEvent) error {
	if s.notificationSvc == nil {
		s.logger.Info("[Push] Push disabled, notification not sent",
			slog.String("recipient_id", event.RecipientID.String()),
			slog.String("title", event.Title),
			slog.String("body", event.Body),
		)

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.RecipientID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice) // token -> device mapping
	for _, device := range devices {
		if device.FCMToken == "" || device.Permission != entity.PermissionGranted {
			continue
		}
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	if len(tokens) == 0 {
		return nil
	}

	var (
		totalSent     int
		invalidTokens []string
		batchErr      error
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))

		successCount, _, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(
			ctx,
			tokens[i:end],
			event.Title,
			event.Body,
			event.Data(),
		)
		if err != nil {
			// Keep going with the other batches
			batchErr = errors.Wrap(err, "failed to send notification batch")

			continue
		}

		totalSent += successCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	// Handle invalid tokens - soft delete devices
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				s.logger.Warn("[Push] Failed to deactivate invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}

	if totalSent == 0 && batchErr != nil {
		return batchErr
	}

	return nil
}
