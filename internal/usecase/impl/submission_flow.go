package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const lockReleaseTimeout = 5 * time.Second

// SubmissionDependencies are the collaborators shared by every submission flow.
type SubmissionDependencies struct {
	Ads           service.RewardedAdFactory
	Actions       usecase.ActionUsecase
	Uploader      usecase.MediaUploader
	Family        usecase.FamilyUsecase
	Lock          service.SubmissionLock
	Metrics       service.CoordinatorMetrics
	Logger        *slog.Logger
	AdErrorPolicy string
	LockTTL       time.Duration
	Now           func() time.Time
}

// commitRequest is a commit scheduled while holding the flow lock and run after releasing it.
type commitRequest struct {
	seq       uint64
	adWatched bool
}

type submissionFlow struct {
	deps       SubmissionDependencies
	guardianID uuid.UUID
	baseCtx    context.Context

	mu           sync.Mutex
	state        entity.SubmissionState
	adState      entity.AdState
	payload      *entity.SubmissionPayload
	pairing      *entity.Pairing
	ad           service.RewardedAd
	adOffs       []func()
	adSeq        uint64
	rewarded     bool
	lockHeld     bool
	lastAlert    *entity.Alert
	lastActionID *uuid.UUID
}

// NewSubmissionFlow creates an idle flow for guardianID. Ad callbacks and
// commits run on baseCtx, which should outlive individual requests.
func NewSubmissionFlow(baseCtx context.Context, guardianID uuid.UUID, deps SubmissionDependencies) usecase.SubmissionFlow {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.AdErrorPolicy == "" {
		deps.AdErrorPolicy = constants.AdErrorPolicyRetry
	}

	return &submissionFlow{
		deps:       deps,
		guardianID: guardianID,
		baseCtx:    context.WithoutCancel(baseCtx),
		state:      entity.SubmissionIdle,
		adState:    entity.AdIdle,
	}
}

func (f *submissionFlow) logger() *slog.Logger {
	return f.deps.Logger.With(slog.String("guardian_id", f.guardianID.String()))
}

func (f *submissionFlow) Start(ctx context.Context, payload entity.SubmissionPayload) error {
	if !payload.Kind.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown action kind %q", payload.Kind)
	}

	f.mu.Lock()
	if f.state != entity.SubmissionIdle {
		f.mu.Unlock()

		return errors.WithStack(domainerrors.ErrSubmissionInFlight)
	}
	captured := clonePayload(payload)
	f.state = entity.SubmissionLoading
	f.payload = &captured
	f.lastAlert = nil
	f.mu.Unlock()

	acquired, err := f.deps.Lock.Acquire(ctx, f.guardianID, f.deps.LockTTL)
	if err != nil || !acquired {
		f.mu.Lock()
		if f.startingLocked(&captured) {
			f.state = entity.SubmissionIdle
			f.payload = nil
		}
		f.mu.Unlock()

		if err != nil {
			return errors.Wrap(err, "failed to acquire submission lock")
		}

		return errors.WithStack(domainerrors.ErrSubmissionInFlight)
	}

	f.mu.Lock()
	if !f.startingLocked(&captured) {
		f.mu.Unlock()
		f.releaseLock()

		return errors.WithStack(domainerrors.ErrInvalidSubmissionState)
	}
	f.lockHeld = true
	f.mu.Unlock()

	pairing, err := f.deps.Family.GuardianPairing(ctx, f.guardianID)

	f.mu.Lock()
	// A Close in between already released the lock along with the flow
	if !f.startingLocked(&captured) {
		f.mu.Unlock()

		return errors.WithStack(domainerrors.ErrInvalidSubmissionState)
	}
	if err != nil {
		f.toIdleLocked()
		f.mu.Unlock()

		return err
	}
	f.pairing = pairing
	commit := f.requestAdLocked()
	f.mu.Unlock()

	f.runCommit(commit)

	return nil
}

// startingLocked reports whether the flow is still loading the payload a Start captured.
func (f *submissionFlow) startingLocked(captured *entity.SubmissionPayload) bool {
	return f.state == entity.SubmissionLoading && f.payload == captured
}

func (f *submissionFlow) Retry(_ context.Context) error {
	f.mu.Lock()
	if f.state != entity.SubmissionErrorShown || f.payload == nil {
		f.mu.Unlock()

		return errors.WithStack(domainerrors.ErrInvalidSubmissionState)
	}
	f.state = entity.SubmissionLoading
	f.lastAlert = nil
	commit := f.requestAdLocked()
	f.mu.Unlock()

	f.runCommit(commit)

	return nil
}

func (f *submissionFlow) Dismiss(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.SubmissionErrorShown {
		return errors.WithStack(domainerrors.ErrInvalidSubmissionState)
	}

	f.deps.Metrics.SubmissionFinished(service.OutcomeAbandoned)
	f.lastAlert = nil
	f.toIdleLocked()

	return nil
}

func (f *submissionFlow) Snapshot() entity.SubmissionSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := entity.SubmissionSnapshot{
		State:   f.state,
		AdState: f.adState,
	}
	if f.payload != nil {
		payload := clonePayload(*f.payload)
		snapshot.Payload = &payload
	}
	if f.lastAlert != nil {
		alert := *f.lastAlert
		snapshot.LastAlert = &alert
	}
	if f.lastActionID != nil {
		id := *f.lastActionID
		snapshot.LastActionID = &id
	}

	return snapshot
}

func (f *submissionFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.toIdleLocked()
}

// requestAdLocked replaces any live ad with a fresh one and starts loading it.
// Ad creation or load failures are handled like an ad error event.
func (f *submissionFlow) requestAdLocked() *commitRequest {
	f.teardownAdLocked()
	f.adSeq++
	seq := f.adSeq
	f.rewarded = false
	f.adState = entity.AdLoading

	ad, err := f.deps.Ads.NewRewardedAd(f.baseCtx, f.guardianID)
	if err != nil {
		return f.adFailedLocked(domainerrors.ErrAdLoadFailed, err.Error())
	}

	f.ad = ad
	for _, eventType := range []entity.AdEventType{
		entity.AdEventLoaded,
		entity.AdEventEarnedReward,
		entity.AdEventError,
		entity.AdEventClosed,
	} {
		f.adOffs = append(f.adOffs, ad.On(eventType, func(event entity.AdEvent) {
			f.onAdEvent(seq, event)
		}))
	}

	if err := ad.Load(f.baseCtx); err != nil {
		return f.adFailedLocked(domainerrors.ErrAdLoadFailed, err.Error())
	}

	f.logger().Debug("[Submission] Ad requested", slog.String("ad_id", ad.ID().String()))

	return nil
}

func (f *submissionFlow) onAdEvent(seq uint64, event entity.AdEvent) {
	f.mu.Lock()
	commit := f.handleAdEventLocked(seq, event)
	f.mu.Unlock()

	f.runCommit(commit)
}

func (f *submissionFlow) handleAdEventLocked(seq uint64, event entity.AdEvent) *commitRequest {
	// Events from a torn-down ad are stale
	if seq != f.adSeq || f.ad == nil {
		return nil
	}

	switch event.Type {
	case entity.AdEventLoaded:
		if f.state != entity.SubmissionLoading {
			return nil
		}
		f.state = entity.SubmissionShown
		f.adState = entity.AdShown
		if err := f.ad.Show(f.baseCtx); err != nil {
			return f.adFailedLocked(domainerrors.ErrAdShowFailed, err.Error())
		}

		return nil

	case entity.AdEventEarnedReward:
		// Only the first reward of a session commits
		if f.rewarded || (f.state != entity.SubmissionShown && f.state != entity.SubmissionLoading) {
			return nil
		}
		f.rewarded = true
		f.adState = entity.AdEarned
		f.state = entity.SubmissionCommitting

		return &commitRequest{seq: seq, adWatched: true}

	case entity.AdEventError:
		if f.rewarded {
			return nil
		}
		failure := domainerrors.ErrAdLoadFailed
		if f.adState == entity.AdShown {
			failure = domainerrors.ErrAdShowFailed
		}

		return f.adFailedLocked(failure, event.Message)

	case entity.AdEventClosed:
		if f.rewarded {
			f.adState = entity.AdClosed

			return nil
		}
		if f.state != entity.SubmissionShown && f.state != entity.SubmissionLoading {
			return nil
		}

		f.logger().Info("[Submission] Ad closed before reward, discarding payload")
		f.deps.Metrics.SubmissionFinished(service.OutcomeAbandoned)
		f.lastAlert = f.newAlert("Not sent", "Watch the whole ad to send your check-in.", false, "")
		f.toIdleLocked()
		f.adState = entity.AdClosed

		return nil
	}

	return nil
}

// adFailedLocked applies the ad error policy: retry keeps the payload in
// errorShown, bypass commits without the ad.
func (f *submissionFlow) adFailedLocked(failure *domainerrors.BaseError, detail string) *commitRequest {
	f.logger().Warn("[Submission] Ad failed",
		slog.String("code", failure.ErrorCode()),
		slog.String("detail", detail),
		slog.String("policy", f.deps.AdErrorPolicy),
	)
	f.teardownAdLocked()
	f.adState = entity.AdErrored

	if f.deps.AdErrorPolicy == constants.AdErrorPolicyBypass {
		f.state = entity.SubmissionCommitting

		return &commitRequest{seq: f.adSeq, adWatched: false}
	}

	f.deps.Metrics.SubmissionFinished(service.OutcomeAdError)
	f.state = entity.SubmissionErrorShown
	f.lastAlert = f.newAlert("Ad unavailable", failure.Message()+". Please try again.", true, failure.ErrorCode())

	return nil
}

// runCommit uploads attached media and inserts the action. It is called
// without holding the flow lock.
func (f *submissionFlow) runCommit(req *commitRequest) {
	if req == nil {
		return
	}

	f.mu.Lock()
	if f.state != entity.SubmissionCommitting || f.payload == nil || f.pairing == nil {
		f.mu.Unlock()

		return
	}
	payload := clonePayload(*f.payload)
	pairing := *f.pairing
	f.mu.Unlock()

	ctx := f.baseCtx
	logger := f.logger().With(slog.String("kind", string(payload.Kind)))

	var mediaURL *string
	if payload.Media != nil {
		uploaded, err := f.deps.Uploader.Upload(ctx, f.guardianID, payload.Kind, payload.Media)
		if err != nil {
			logger.Error("[Submission] Media upload failed, action not inserted", slog.Any("error", err))
			f.failCommit(service.OutcomeUploadFailed, err)

			return
		}
		mediaURL = &uploaded
	}

	record, err := f.deps.Actions.SendAction(ctx, usecase.SendActionInput{
		Pairing:        pairing,
		Kind:           payload.Kind,
		TextMessage:    payload.TextMessage,
		MediaURL:       mediaURL,
		OriginatorRole: entity.RoleGuardian,
		AdWatched:      req.adWatched,
	})
	if err != nil {
		if mediaURL != nil {
			logger.Warn("[Submission] Uploaded media orphaned by failed insert", slog.String("media_url", *mediaURL))
		}
		f.failCommit(service.OutcomeInsertFailed, err)

		return
	}

	parentName := f.deps.Family.DisplayName(ctx, pairing.ParentID, fallbackParentLabel)

	f.mu.Lock()
	defer f.mu.Unlock()

	outcome := service.OutcomeCommitted
	if !req.adWatched {
		outcome = service.OutcomeBypassed
	}
	f.deps.Metrics.SubmissionFinished(outcome)
	f.lastActionID = &record.ID
	f.lastAlert = f.newAlert("💌 Sent", fmt.Sprintf("Your check-in reached %s!", parentName), false, "")
	f.toIdleLocked()

	logger.Info("[Submission] Action committed",
		slog.String("action_id", record.ID.String()),
		slog.Bool("ad_watched", req.adWatched),
	)
}

func (f *submissionFlow) failCommit(outcome string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deps.Metrics.SubmissionFinished(outcome)
	f.teardownAdLocked()
	f.adSeq++
	f.state = entity.SubmissionErrorShown

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		f.lastAlert = f.newAlert("Error", appErr.Message(), true, appErr.ErrorCode())

		return
	}
	f.lastAlert = f.newAlert("Error", "Something went wrong while sending your check-in.", true, domainerrors.ErrInternalError.ErrorCode())
}

func (f *submissionFlow) teardownAdLocked() {
	for _, off := range f.adOffs {
		off()
	}
	f.adOffs = nil

	if f.ad != nil {
		f.ad.Destroy()
		f.ad = nil
	}
}

// toIdleLocked discards the payload, tears down the ad and frees the lock.
func (f *submissionFlow) toIdleLocked() {
	f.teardownAdLocked()
	f.adSeq++
	f.state = entity.SubmissionIdle
	f.adState = entity.AdIdle
	f.payload = nil
	f.pairing = nil
	f.rewarded = false

	if f.lockHeld {
		f.lockHeld = false
		f.releaseLock()
	}
}

func (f *submissionFlow) releaseLock() {
	ctx, cancel := context.WithTimeout(f.baseCtx, lockReleaseTimeout)
	defer cancel()

	if err := f.deps.Lock.Release(ctx, f.guardianID); err != nil {
		f.logger().Warn("[Submission] Failed to release submission lock", slog.Any("error", err))
	}
}

func (f *submissionFlow) newAlert(title, message string, retryable bool, code string) *entity.Alert {
	return &entity.Alert{
		Title:     title,
		Message:   message,
		Retryable: retryable,
		Code:      code,
		At:        f.deps.Now().UTC(),
	}
}

func clonePayload(payload entity.SubmissionPayload) entity.SubmissionPayload {
	cloned := entity.SubmissionPayload{Kind: payload.Kind}
	if payload.TextMessage != nil {
		text := *payload.TextMessage
		cloned.TextMessage = &text
	}
	if payload.Media != nil {
		media := *payload.Media
		cloned.Media = &media
	}

	return cloned
}
