package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
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

// fakeRewardedAd records calls and lets tests fire ad events by hand.
type fakeRewardedAd struct {
	id      uuid.UUID
	loadErr error
	showErr error

	mu        sync.Mutex
	handlers  map[entity.AdEventType]service.AdEventHandler
	captured  map[entity.AdEventType]service.AdEventHandler
	loaded    bool
	shown     bool
	destroyed bool
}

func newFakeRewardedAd() *fakeRewardedAd {
	return &fakeRewardedAd{
		id:       uuid.New(),
		handlers: make(map[entity.AdEventType]service.AdEventHandler),
		captured: make(map[entity.AdEventType]service.AdEventHandler),
	}
}

func (a *fakeRewardedAd) ID() uuid.UUID { return a.id }

func (a *fakeRewardedAd) On(eventType entity.AdEventType, handler service.AdEventHandler) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.handlers[eventType] = handler
	a.captured[eventType] = handler

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.handlers, eventType)
	}
}

func (a *fakeRewardedAd) Load(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = true

	return a.loadErr
}

func (a *fakeRewardedAd) Show(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shown = true

	return a.showErr
}

func (a *fakeRewardedAd) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyed = true
	a.handlers = make(map[entity.AdEventType]service.AdEventHandler)
}

func (a *fakeRewardedAd) emit(eventType entity.AdEventType) {
	a.mu.Lock()
	handler := a.handlers[eventType]
	a.mu.Unlock()

	if handler != nil {
		handler(entity.AdEvent{Type: eventType})
	}
}

// emitStale fires through a handler even after the flow detached it.
func (a *fakeRewardedAd) emitStale(eventType entity.AdEventType, message string) {
	a.mu.Lock()
	handler := a.captured[eventType]
	a.mu.Unlock()

	if handler != nil {
		handler(entity.AdEvent{Type: eventType, Message: message})
	}
}

func (a *fakeRewardedAd) isDestroyed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.destroyed
}

// submissionFixtures holds all test dependencies for submission flow tests.
type submissionFixtures struct {
	flow       usecase.SubmissionFlow
	ads        *mockSvc.MockRewardedAdFactory
	actions    *mockUsecase.MockActionUsecase
	uploader   *mockUsecase.MockMediaUploader
	family     *mockUsecase.MockFamilyUsecase
	lock       *mockSvc.MockSubmissionLock
	metrics    *mockSvc.MockCoordinatorMetrics
	guardianID uuid.UUID
	pairing    *entity.Pairing
	created    []*fakeRewardedAd
}

var testNow = time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)

func createTestSubmissionFlow(t *testing.T, policy string) *submissionFixtures {
	fx := &submissionFixtures{
		ads:        mockSvc.NewMockRewardedAdFactory(t),
		actions:    mockUsecase.NewMockActionUsecase(t),
		uploader:   mockUsecase.NewMockMediaUploader(t),
		family:     mockUsecase.NewMockFamilyUsecase(t),
		lock:       mockSvc.NewMockSubmissionLock(t),
		metrics:    mockSvc.NewMockCoordinatorMetrics(t),
		guardianID: uuid.New(),
	}
	fx.pairing = &entity.Pairing{GroupID: uuid.New(), GuardianID: fx.guardianID, ParentID: uuid.New()}

	fx.flow = NewSubmissionFlow(context.Background(), fx.guardianID, SubmissionDependencies{
		Ads:           fx.ads,
		Actions:       fx.actions,
		Uploader:      fx.uploader,
		Family:        fx.family,
		Lock:          fx.lock,
		Metrics:       fx.metrics,
		Logger:        newTestLogger(),
		AdErrorPolicy: policy,
		LockTTL:       2 * time.Minute,
		Now:           func() time.Time { return testNow },
	})

	return fx
}

// expectStart wires the calls every successful Start makes.
func (fx *submissionFixtures) expectStart() {
	fx.lock.EXPECT().Acquire(mock.Anything, fx.guardianID, 2*time.Minute).Return(true, nil).Once()
	fx.family.EXPECT().GuardianPairing(mock.Anything, fx.guardianID).Return(fx.pairing, nil).Once()
	fx.expectNewAd(nil)
}

func (fx *submissionFixtures) expectNewAd(loadErr error) {
	fx.ads.EXPECT().
		NewRewardedAd(mock.Anything, fx.guardianID).
		RunAndReturn(func(context.Context, uuid.UUID) (service.RewardedAd, error) {
			ad := newFakeRewardedAd()
			ad.loadErr = loadErr
			fx.created = append(fx.created, ad)

			return ad, nil
		}).
		Once()
}

func (fx *submissionFixtures) lastAd(t *testing.T) *fakeRewardedAd {
	t.Helper()
	require.NotEmpty(t, fx.created)

	return fx.created[len(fx.created)-1]
}

func TestSubmissionFlow_FirstRewardCommitsOnce(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()

	actionID := uuid.New()
	fx.actions.EXPECT().
		SendAction(mock.Anything, mock.AnythingOfType("usecase.SendActionInput")).
		Run(func(_ context.Context, input usecase.SendActionInput) {
			assert.Equal(t, *fx.pairing, input.Pairing)
			assert.Equal(t, entity.ActionKindCheckIn, input.Kind)
			assert.Equal(t, entity.RoleGuardian, input.OriginatorRole)
			assert.True(t, input.AdWatched)
			assert.Nil(t, input.MediaURL)
		}).
		Return(&entity.ActionRecord{ID: actionID}, nil).
		Once()
	fx.family.EXPECT().DisplayName(mock.Anything, fx.pairing.ParentID, "Parent").Return("Mom").Once()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeCommitted).Return().Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn}))
	assert.Equal(t, entity.SubmissionLoading, fx.flow.Snapshot().State)

	ad := fx.lastAd(t)
	ad.emit(entity.AdEventLoaded)
	assert.Equal(t, entity.SubmissionShown, fx.flow.Snapshot().State)
	assert.True(t, ad.shown)

	ad.emitStale(entity.AdEventEarnedReward, "")
	ad.emitStale(entity.AdEventEarnedReward, "")
	ad.emitStale(entity.AdEventClosed, "")

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	assert.Nil(t, snapshot.Payload)
	require.NotNil(t, snapshot.LastActionID)
	assert.Equal(t, actionID, *snapshot.LastActionID)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "💌 Sent", snapshot.LastAlert.Title)
	assert.Equal(t, "Your check-in reached Mom!", snapshot.LastAlert.Message)
	assert.True(t, ad.isDestroyed())
}

func TestSubmissionFlow_StartWhileBusyKeepsOriginalPayload(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()

	first := entity.SubmissionPayload{Kind: entity.ActionKindCheckIn, TextMessage: strPtr("first")}
	require.NoError(t, fx.flow.Start(context.Background(), first))

	err := fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindVideo})
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)

	snapshot := fx.flow.Snapshot()
	require.NotNil(t, snapshot.Payload)
	assert.Equal(t, entity.ActionKindCheckIn, snapshot.Payload.Kind)
	assert.Equal(t, "first", *snapshot.Payload.TextMessage)
	assert.Len(t, fx.created, 1)
}

func TestSubmissionFlow_LockHeldElsewhere(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.lock.EXPECT().Acquire(mock.Anything, fx.guardianID, 2*time.Minute).Return(false, nil).Once()

	err := fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn})
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionInFlight)
	assert.Equal(t, entity.SubmissionIdle, fx.flow.Snapshot().State)
}

func TestSubmissionFlow_UploadFailureSkipsInsert(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()

	media := &entity.MediaAttachment{URI: "file:///data/recordings/cheer.m4a"}
	fx.uploader.EXPECT().
		Upload(mock.Anything, fx.guardianID, entity.ActionKindVoiceCheer, media).
		Return("", domainerrors.NewMediaUploadError("read", errors.New("no such file"))).
		Once()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeUploadFailed).Return().Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindVoiceCheer, Media: media}))
	ad := fx.lastAd(t)
	ad.emit(entity.AdEventLoaded)
	ad.emit(entity.AdEventEarnedReward)

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionErrorShown, snapshot.State)
	require.NotNil(t, snapshot.Payload)
	assert.Equal(t, entity.ActionKindVoiceCheer, snapshot.Payload.Kind)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "MEDIA_UPLOAD_FAILED", snapshot.LastAlert.Code)
	assert.True(t, snapshot.LastAlert.Retryable)

	// Retry runs the whole submission again with a fresh ad
	fx.expectNewAd(nil)
	require.NoError(t, fx.flow.Retry(context.Background()))
	assert.Len(t, fx.created, 2)
	assert.True(t, fx.created[0].isDestroyed())
	assert.Equal(t, entity.SubmissionLoading, fx.flow.Snapshot().State)
}

func TestSubmissionFlow_InsertFailureCarriesBackendMessage(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()

	media := &entity.MediaAttachment{URI: "https://cdn.example.com/upload/IMG_0001.JPG"}
	url := "https://storage.example.com/photos/a.jpg"
	fx.uploader.EXPECT().Upload(mock.Anything, fx.guardianID, entity.ActionKindPhoto, media).Return(url, nil).Once()
	fx.actions.EXPECT().
		SendAction(mock.Anything, mock.MatchedBy(func(input usecase.SendActionInput) bool {
			return input.MediaURL != nil && *input.MediaURL == url
		})).
		Return(nil, domainerrors.NewActionInsertError(errors.New(`new row violates row-level security policy for table "actions"`))).
		Once()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeInsertFailed).Return().Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindPhoto, Media: media}))
	ad := fx.lastAd(t)
	ad.emit(entity.AdEventLoaded)
	ad.emit(entity.AdEventEarnedReward)

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionErrorShown, snapshot.State)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "ACTION_INSERT_FAILED", snapshot.LastAlert.Code)
	assert.Equal(t, `new row violates row-level security policy for table "actions"`, snapshot.LastAlert.Message)
}

func TestSubmissionFlow_AdErrorRetryPolicy(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeAdError).Return().Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn}))
	ad := fx.lastAd(t)
	ad.emitStale(entity.AdEventError, "no fill")

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionErrorShown, snapshot.State)
	assert.Equal(t, entity.AdErrored, snapshot.AdState)
	require.NotNil(t, snapshot.Payload)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "AD_LOAD_FAILED", snapshot.LastAlert.Code)
	assert.True(t, ad.isDestroyed())

	// A reward from the torn-down ad must not commit
	ad.emitStale(entity.AdEventEarnedReward, "")
	assert.Equal(t, entity.SubmissionErrorShown, fx.flow.Snapshot().State)

	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeAbandoned).Return().Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()
	require.NoError(t, fx.flow.Dismiss(context.Background()))

	snapshot = fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	assert.Nil(t, snapshot.Payload)
}

func TestSubmissionFlow_AdErrorBypassPolicyCommitsWithoutAd(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyBypass)
	fx.expectStart()
	fx.actions.EXPECT().
		SendAction(mock.Anything, mock.MatchedBy(func(input usecase.SendActionInput) bool {
			return !input.AdWatched
		})).
		Return(&entity.ActionRecord{ID: uuid.New()}, nil).
		Once()
	fx.family.EXPECT().DisplayName(mock.Anything, fx.pairing.ParentID, "Parent").Return("Dad").Once()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeBypassed).Return().Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn}))
	fx.lastAd(t).emit(entity.AdEventError)

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "Your check-in reached Dad!", snapshot.LastAlert.Message)
}

func TestSubmissionFlow_LoadFailureEntersErrorShown(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.lock.EXPECT().Acquire(mock.Anything, fx.guardianID, 2*time.Minute).Return(true, nil).Once()
	fx.family.EXPECT().GuardianPairing(mock.Anything, fx.guardianID).Return(fx.pairing, nil).Once()
	fx.expectNewAd(errors.New("sdk not initialised"))
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeAdError).Return().Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn}))

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionErrorShown, snapshot.State)
	require.NotNil(t, snapshot.LastAlert)
	assert.Equal(t, "AD_LOAD_FAILED", snapshot.LastAlert.Code)
}

func TestSubmissionFlow_ClosedBeforeRewardDiscardsPayload(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.expectStart()
	fx.metrics.EXPECT().SubmissionFinished(service.OutcomeAbandoned).Return().Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	require.NoError(t, fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn}))
	ad := fx.lastAd(t)
	ad.emit(entity.AdEventLoaded)
	ad.emit(entity.AdEventClosed)

	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	assert.Nil(t, snapshot.Payload)
	require.NotNil(t, snapshot.LastAlert)
	assert.False(t, snapshot.LastAlert.Retryable)
	assert.True(t, ad.isDestroyed())
}

func TestSubmissionFlow_PairingMissingReleasesLock(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.lock.EXPECT().Acquire(mock.Anything, fx.guardianID, 2*time.Minute).Return(true, nil).Once()
	fx.family.EXPECT().GuardianPairing(mock.Anything, fx.guardianID).Return(nil, errors.WithStack(domainerrors.ErrPairingNotFound)).Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	err := fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn})
	assert.ErrorIs(t, err, domainerrors.ErrPairingNotFound)
	assert.Equal(t, entity.SubmissionIdle, fx.flow.Snapshot().State)
}

func TestSubmissionFlow_CloseDuringLockAcquireReleasesLock(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)

	entered := make(chan struct{})
	proceed := make(chan struct{})
	fx.lock.EXPECT().
		Acquire(mock.Anything, fx.guardianID, 2*time.Minute).
		RunAndReturn(func(context.Context, uuid.UUID, time.Duration) (bool, error) {
			close(entered)
			<-proceed

			return true, nil
		}).
		Once()
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn})
	}()

	<-entered
	fx.flow.Close()
	close(proceed)

	assert.ErrorIs(t, <-errCh, domainerrors.ErrInvalidSubmissionState)
	snapshot := fx.flow.Snapshot()
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	assert.Equal(t, entity.AdIdle, snapshot.AdState)
	assert.Empty(t, fx.created)
}

func TestSubmissionFlow_CloseDuringPairingLookupCreatesNoAd(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)
	fx.lock.EXPECT().Acquire(mock.Anything, fx.guardianID, 2*time.Minute).Return(true, nil).Once()

	entered := make(chan struct{})
	proceed := make(chan struct{})
	fx.family.EXPECT().
		GuardianPairing(mock.Anything, fx.guardianID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Pairing, error) {
			close(entered)
			<-proceed

			return fx.pairing, nil
		}).
		Once()
	// Close owns the release once Start has recorded the lock
	fx.lock.EXPECT().Release(mock.Anything, fx.guardianID).Return(nil).Once()

	errCh := make(chan error, 1)
	go func() {
		errCh <- fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: entity.ActionKindCheckIn})
	}()

	<-entered
	fx.flow.Close()
	close(proceed)

	assert.ErrorIs(t, <-errCh, domainerrors.ErrInvalidSubmissionState)
	assert.Equal(t, entity.SubmissionIdle, fx.flow.Snapshot().State)
	assert.Empty(t, fx.created)
}

func TestSubmissionFlow_RetryAndDismissRequireErrorShown(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)

	assert.ErrorIs(t, fx.flow.Retry(context.Background()), domainerrors.ErrInvalidSubmissionState)
	assert.ErrorIs(t, fx.flow.Dismiss(context.Background()), domainerrors.ErrInvalidSubmissionState)
}

func TestSubmissionFlow_RejectsUnknownKind(t *testing.T) {
	fx := createTestSubmissionFlow(t, constants.AdErrorPolicyRetry)

	err := fx.flow.Start(context.Background(), entity.SubmissionPayload{Kind: "hug"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubmissionService_SnapshotOfUnknownGuardianIsIdle(t *testing.T) {
	svc := NewSubmissionService(SubmissionServiceParams{Logger: newTestLogger()})
	defer svc.Close()

	snapshot := svc.Snapshot(context.Background(), uuid.New())
	assert.Equal(t, entity.SubmissionIdle, snapshot.State)
	assert.Equal(t, entity.AdIdle, snapshot.AdState)
}
