package impl

import (
	"context"
	"fmt"
	"testing"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	mockRepo "carebridge/internal/mocks/repository"
	mockSvc "carebridge/internal/mocks/service"
	mockUsecase "carebridge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SessionLifecycle(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	svc := NewNotificationService(NotificationServiceParams{
		Feed:        feed,
		Family:      mockUsecase.NewMockFamilyUsecase(t),
		Permissions: mockUsecase.NewMockPermissionUsecase(t),
		Sink:        mockUsecase.NewMockNotificationSink(t),
		Metrics:     mockSvc.NewMockCoordinatorMetrics(t),
		Logger:      newTestLogger(),
	})

	userID := uuid.New()
	unsubscribed := 0
	feed.EXPECT().
		Subscribe(mock.Anything).
		Return(func() { unsubscribed++ }).
		Twice()

	first, err := svc.StartSession(context.Background(), userID, entity.RoleParent)
	require.NoError(t, err)

	second, err := svc.StartSession(context.Background(), userID, entity.RoleParent)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, unsubscribed)

	active, ok := svc.ActiveSession(userID)
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)

	require.NoError(t, svc.StopSession(context.Background(), userID))
	assert.Equal(t, 2, unsubscribed)

	_, ok = svc.ActiveSession(userID)
	assert.False(t, ok)
	assert.ErrorIs(t, svc.StopSession(context.Background(), userID), domainerrors.ErrSessionNotFound)
}

func TestNotificationService_RejectsAdminRole(t *testing.T) {
	svc := NewNotificationService(NotificationServiceParams{Logger: newTestLogger()})

	_, err := svc.StartSession(context.Background(), uuid.New(), entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPushNotificationSink_SendsToGrantedDevices(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	sink := NewPushNotificationSink(deviceRepo, notificationSvc, newTestLogger())

	ctx := context.Background()
	recipientID := uuid.New()
	invalid := &entity.UserDevice{ID: uuid.New(), FCMToken: "stale", Permission: entity.PermissionGranted, IsActive: true}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), FCMToken: "good", Permission: entity.PermissionGranted, IsActive: true},
		invalid,
		{ID: uuid.New(), FCMToken: "muted", Permission: entity.PermissionDenied, IsActive: true},
		{ID: uuid.New(), Permission: entity.PermissionGranted, IsActive: true},
	}
	event := &entity.NotificationEvent{
		ActionID:            uuid.New(),
		RecipientID:         recipientID,
		Kind:                entity.ActionKindVoiceCheer,
		NotificationContent: entity.NotificationContent{Title: "🎙️ Voice message", Body: "Jun sent a voice message!"},
	}

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, event.Title, event.Body, event.Data()).
		Return(1, 1, []string{"stale"}, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, invalid.ID).Return(nil)

	require.NoError(t, sink.Deliver(ctx, event))
}

func TestPushNotificationSink_BatchesLargeTokenSets(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	sink := NewPushNotificationSink(deviceRepo, notificationSvc, newTestLogger())

	ctx := context.Background()
	recipientID := uuid.New()
	devices := make([]*entity.UserDevice, 0, firebaseBatchSize+10)
	for i := range firebaseBatchSize + 10 {
		devices = append(devices, &entity.UserDevice{
			ID:         uuid.New(),
			FCMToken:   fmt.Sprintf("token-%d", i),
			Permission: entity.PermissionGranted,
			IsActive:   true,
		})
	}
	event := &entity.NotificationEvent{RecipientID: recipientID, Kind: entity.ActionKindCheckIn}

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, firebaseBatchSize, nil, errors.New("quota exceeded")).
		Once()
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 10 }), mock.Anything, mock.Anything, mock.Anything).
		Return(10, 0, nil, nil).
		Once()

	require.NoError(t, sink.Deliver(ctx, event))
}

func TestPushNotificationSink_AllBatchesFail(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	sink := NewPushNotificationSink(deviceRepo, notificationSvc, newTestLogger())

	ctx := context.Background()
	recipientID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return([]*entity.UserDevice{
		{ID: uuid.New(), FCMToken: "only", Permission: entity.PermissionGranted},
	}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"only"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, nil, errors.New("unavailable"))

	assert.Error(t, sink.Deliver(ctx, &entity.NotificationEvent{RecipientID: recipientID}))
}

func TestPushNotificationSink_DisabledPushOnlyLogs(t *testing.T) {
	sink := NewPushNotificationSink(mockRepo.NewMockDeviceRepository(t), nil, newTestLogger())

	assert.NoError(t, sink.Deliver(context.Background(), &entity.NotificationEvent{RecipientID: uuid.New()}))
}
