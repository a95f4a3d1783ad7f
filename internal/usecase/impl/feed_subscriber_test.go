package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	mockSvc "carebridge/internal/mocks/service"
	mockUsecase "carebridge/internal/mocks/usecase"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// feedFixtures holds all test dependencies for feed subscriber tests.
type feedFixtures struct {
	subscriber  usecase.FeedSubscriber
	feed        *mockSvc.MockChangeFeed
	family      *mockUsecase.MockFamilyUsecase
	permissions *mockUsecase.MockPermissionUsecase
	sink        *mockUsecase.MockNotificationSink
	metrics     *mockSvc.MockCoordinatorMetrics
}

func createTestFeedSubscriber(t *testing.T) feedFixtures {
	fx := feedFixtures{
		feed:        mockSvc.NewMockChangeFeed(t),
		family:      mockUsecase.NewMockFamilyUsecase(t),
		permissions: mockUsecase.NewMockPermissionUsecase(t),
		sink:        mockUsecase.NewMockNotificationSink(t),
		metrics:     mockSvc.NewMockCoordinatorMetrics(t),
	}
	fx.subscriber = NewFeedSubscriber(FeedDependencies{
		Feed:        fx.feed,
		Family:      fx.family,
		Permissions: fx.permissions,
		Sink:        fx.sink,
		Metrics:     fx.metrics,
		Logger:      newTestLogger(),
	})

	return fx
}

// start subscribes userID and returns the listener registered on the feed.
func (fx feedFixtures) start(t *testing.T, userID uuid.UUID, role entity.Role) service.ActionListener {
	t.Helper()

	var listener service.ActionListener
	fx.feed.EXPECT().
		Subscribe(mock.Anything).
		RunAndReturn(func(l service.ActionListener) func() {
			listener = l

			return func() {}
		}).
		Once()

	handle, err := fx.subscriber.Start(context.Background(), userID, role)
	require.NoError(t, err)
	require.NotNil(t, handle)
	require.NotNil(t, listener)

	return listener
}

func TestFeedSubscriber_ParentReceivesGuardianCheckIn(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()
	guardianID := uuid.New()
	listener := fx.start(t, parentID, entity.RoleParent)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		GroupID:           uuid.New(),
		SenderGuardianID:  guardianID,
		RecipientParentID: parentID,
		Kind:              entity.ActionKindCheckIn,
		Status:            entity.ActionStatusPending,
		OriginatorRole:    entity.RoleGuardian,
	}

	fx.family.EXPECT().DisplayName(mock.Anything, guardianID, "Family").Return("Minji")
	fx.permissions.EXPECT().Current(mock.Anything, parentID).Return(entity.PermissionGranted, nil)
	fx.sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("*entity.NotificationEvent")).
		Run(func(_ context.Context, event *entity.NotificationEvent) {
			assert.Equal(t, action.ID, event.ActionID)
			assert.Equal(t, parentID, event.RecipientID)
			assert.Equal(t, "💌 Check-in arrived", event.Title)
			assert.Equal(t, "Minji sent a check-in!", event.Body)
		}).
		Return(nil)
	fx.metrics.EXPECT().NotificationDelivered(entity.ActionKindCheckIn).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_ParentSkipsOwnWakeAlert(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()
	listener := fx.start(t, parentID, entity.RoleParent)

	// Legacy row without an originator tag
	wake := entity.WakeAlertText
	action := &entity.ActionRecord{
		ID:                uuid.New(),
		SenderGuardianID:  uuid.New(),
		RecipientParentID: parentID,
		Kind:              entity.ActionKindCheckIn,
		TextMessage:       &wake,
	}

	fx.metrics.EXPECT().NotificationDropped(service.DropReasonSelf).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_ParentSkipsOwnMessage(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()
	listener := fx.start(t, parentID, entity.RoleParent)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		RecipientParentID: parentID,
		Kind:              entity.ActionKindMessage,
		TextMessage:       strPtr("hello"),
	}

	fx.metrics.EXPECT().NotificationDropped(service.DropReasonSelf).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_GuardianSkipsOwnAction(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	guardianID := uuid.New()
	listener := fx.start(t, guardianID, entity.RoleGuardian)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		GroupID:           uuid.New(),
		SenderGuardianID:  guardianID,
		RecipientParentID: uuid.New(),
		Kind:              entity.ActionKindVoiceCheer,
		OriginatorRole:    entity.RoleGuardian,
	}

	fx.metrics.EXPECT().NotificationDropped(service.DropReasonSelf).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_GuardianOutsideGroupDropped(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	guardianID := uuid.New()
	listener := fx.start(t, guardianID, entity.RoleGuardian)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		GroupID:           uuid.New(),
		SenderGuardianID:  uuid.New(),
		RecipientParentID: uuid.New(),
		Kind:              entity.ActionKindPhoto,
	}

	fx.family.EXPECT().GuardianGroupIDs(mock.Anything, guardianID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.metrics.EXPECT().NotificationDropped(service.DropReasonIrrelevant).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_GuardianMembershipLookupFailsClosed(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	guardianID := uuid.New()
	listener := fx.start(t, guardianID, entity.RoleGuardian)

	action := &entity.ActionRecord{
		ID:               uuid.New(),
		GroupID:          uuid.New(),
		SenderGuardianID: uuid.New(),
		Kind:             entity.ActionKindPhoto,
	}

	fx.family.EXPECT().GuardianGroupIDs(mock.Anything, guardianID).Return(nil, errors.New("connection reset"))
	fx.metrics.EXPECT().NotificationDropped(service.DropReasonLookup).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_SecondaryGuardianReceivesWakeAlert(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	guardianID := uuid.New()
	parentID := uuid.New()
	groupID := uuid.New()
	listener := fx.start(t, guardianID, entity.RoleGuardian)

	wake := entity.WakeAlertText
	action := &entity.ActionRecord{
		ID:                uuid.New(),
		GroupID:           groupID,
		SenderGuardianID:  uuid.New(),
		RecipientParentID: parentID,
		Kind:              entity.ActionKindCheckIn,
		TextMessage:       &wake,
		OriginatorRole:    entity.RoleParent,
	}

	fx.family.EXPECT().GuardianGroupIDs(mock.Anything, guardianID).Return([]uuid.UUID{uuid.New(), groupID}, nil)
	fx.family.EXPECT().DisplayName(mock.Anything, parentID, "Parent").Return("Parent")
	fx.permissions.EXPECT().Current(mock.Anything, guardianID).Return(entity.PermissionGranted, nil)
	fx.sink.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(event *entity.NotificationEvent) bool {
			return event.Title == "🌞 Wake alert" && event.Body == "Parent woke up!"
		})).
		Return(nil)
	fx.metrics.EXPECT().NotificationDelivered(entity.ActionKindCheckIn).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_PermissionNotGrantedDropsSilently(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()
	guardianID := uuid.New()
	listener := fx.start(t, parentID, entity.RoleParent)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		SenderGuardianID:  guardianID,
		RecipientParentID: parentID,
		Kind:              entity.ActionKindVideo,
		OriginatorRole:    entity.RoleGuardian,
	}

	fx.family.EXPECT().DisplayName(mock.Anything, guardianID, "Family").Return("Family")
	fx.permissions.EXPECT().Current(mock.Anything, parentID).Return(entity.PermissionDenied, nil)
	fx.metrics.EXPECT().NotificationDropped(service.DropReasonPermission).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_SinkFailureCounted(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()
	guardianID := uuid.New()
	listener := fx.start(t, parentID, entity.RoleParent)

	action := &entity.ActionRecord{
		ID:                uuid.New(),
		SenderGuardianID:  guardianID,
		RecipientParentID: parentID,
		Kind:              entity.ActionKindVoiceCheer,
	}

	fx.family.EXPECT().DisplayName(mock.Anything, guardianID, "Family").Return("Jun")
	fx.permissions.EXPECT().Current(mock.Anything, parentID).Return(entity.PermissionGranted, nil)
	fx.sink.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))
	fx.metrics.EXPECT().NotificationDropped(service.DropReasonSink).Return()

	listener(context.Background(), action)
}

func TestFeedSubscriber_RestartDetachesPreviousListener(t *testing.T) {
	fx := createTestFeedSubscriber(t)
	parentID := uuid.New()

	var (
		listeners    []service.ActionListener
		unsubscribed int
	)
	fx.feed.EXPECT().
		Subscribe(mock.Anything).
		RunAndReturn(func(l service.ActionListener) func() {
			listeners = append(listeners, l)

			return func() { unsubscribed++ }
		}).
		Twice()

	first, err := fx.subscriber.Start(context.Background(), parentID, entity.RoleParent)
	require.NoError(t, err)

	second, err := fx.subscriber.Start(context.Background(), parentID, entity.RoleParent)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, unsubscribed)
	assert.Equal(t, second.ID, fx.subscriber.Active().ID)
	require.Len(t, listeners, 2)

	// A late event on the old listener does nothing
	listeners[0](context.Background(), &entity.ActionRecord{
		ID:                uuid.New(),
		RecipientParentID: parentID,
		Kind:              entity.ActionKindCheckIn,
	})

	// Stopping with the stale handle keeps the new subscription
	fx.subscriber.Stop(first)
	assert.NotNil(t, fx.subscriber.Active())

	fx.subscriber.Stop(second)
	assert.Nil(t, fx.subscriber.Active())
	assert.Equal(t, 2, unsubscribed)
}
