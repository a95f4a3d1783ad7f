package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carebridge/internal/delivery/context"
	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/repository"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ActionServiceParams holds dependencies for the action service, injected by Fx.
type ActionServiceParams struct {
	fx.In

	ActionRepo repository.ActionRepository
	TxManager  repository.TransactionManager
	Family     usecase.FamilyUsecase
	Uploader   usecase.MediaUploader
	Publisher  service.EventPublisher
	Logger     *slog.Logger
	Now        func() time.Time `optional:"true"`
}

type actionService struct {
	actionRepo repository.ActionRepository
	txManager  repository.TransactionManager
	family     usecase.FamilyUsecase
	uploader   usecase.MediaUploader
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewActionService creates the action-log use cases
func NewActionService(params ActionServiceParams) usecase.ActionUsecase {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &actionService{
		actionRepo: params.ActionRepo,
		txManager:  params.TxManager,
		family:     params.Family,
		uploader:   params.Uploader,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        now,
	}
}

func (s *actionService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *actionService) SendAction(ctx context.Context, input usecase.SendActionInput) (*entity.ActionRecord, error) {
	record := newActionRecord(input, s.now())

	if err := s.actionRepo.CreateAction(ctx, record); err != nil {
		s.getLogger(ctx).Error("[Action] Insert failed",
			slog.String("kind", string(record.Kind)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewActionInsertError(err)
	}

	s.publish(ctx, record)

	return record, nil
}

func (s *actionService) MarkConsumed(ctx context.Context, parentID, actionID uuid.UUID, status entity.ActionStatus) (*entity.ActionRecord, error) {
	if status != entity.ActionStatusPlayed && status != entity.ActionStatusViewed {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "status %q is not a consumed status", status)
	}

	action, err := s.actionRepo.FindActionByID(ctx, actionID)
	if err != nil {
		if errors.Is(err, repository.ErrActionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrActionNotFound)
		}

		return nil, errors.Wrap(err, "failed to find action")
	}

	if action.RecipientParentID != parentID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	// Consuming twice with the same status keeps the first playedAt
	if action.Status == status {
		return action, nil
	}
	if !action.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "%s -> %s", action.Status, status)
	}

	playedAt := s.now().UTC()
	if err := s.actionRepo.MarkConsumed(ctx, actionID, status, playedAt); err != nil {
		if errors.Is(err, repository.ErrActionStatusConflict) {
			return nil, errors.WithStack(domainerrors.ErrInvalidStatusTransition)
		}

		return nil, errors.Wrap(err, "failed to mark action consumed")
	}

	action.Status = status
	action.PlayedAt = &playedAt

	return action, nil
}

func (s *actionService) SendWakeAlert(ctx context.Context, parentID uuid.UUID) (*entity.ActionRecord, error) {
	pairing, err := s.family.ParentPairing(ctx, parentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	text := entity.WakeAlertText
	record := newActionRecord(usecase.SendActionInput{
		Pairing:        *pairing,
		Kind:           entity.ActionKindCheckIn,
		TextMessage:    &text,
		OriginatorRole: entity.RoleParent,
	}, now)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		actionRepo := factory.NewActionRepository()

		sent, err := actionRepo.HasWakeAlertSince(ctx, parentID, startOfUTCDay(now))
		if err != nil {
			return errors.Wrap(err, "failed to check today's wake alert")
		}
		if sent {
			return errors.WithStack(domainerrors.ErrWakeAlertAlreadySent)
		}

		if err := actionRepo.CreateAction(ctx, record); err != nil {
			return domainerrors.NewActionInsertError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.getLogger(ctx).Info("[Action] Wake alert sent", slog.String("parent_id", parentID.String()))
	s.publish(ctx, record)

	return record, nil
}

func (s *actionService) SendParentMessage(ctx context.Context, parentID uuid.UUID, input usecase.ParentMessageInput) (*entity.ActionRecord, error) {
	text := normalizeText(input.TextMessage)
	if text == nil && input.Media == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a message needs text or media")
	}

	pairing, err := s.family.ParentPairing(ctx, parentID)
	if err != nil {
		return nil, err
	}

	var mediaURL *string
	if input.Media != nil {
		uploaded, err := s.uploader.Upload(ctx, parentID, entity.ActionKindMessage, input.Media)
		if err != nil {
			return nil, err
		}
		mediaURL = &uploaded
	}

	return s.SendAction(ctx, usecase.SendActionInput{
		Pairing:        *pairing,
		Kind:           entity.ActionKindMessage,
		TextMessage:    text,
		MediaURL:       mediaURL,
		OriginatorRole: entity.RoleParent,
	})
}

func (s *actionService) TodayStatus(ctx context.Context, guardianID uuid.UUID) (*entity.TodayStatus, error) {
	actions, err := s.actionRepo.FindSentSince(ctx, guardianID, startOfUTCDay(s.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list today's actions")
	}

	status := &entity.TodayStatus{}
	for _, action := range actions {
		// Parent-originated rows carry the guardian id too
		if action.OriginatedByParent() {
			continue
		}
		status.Count++
		if status.LastSentAt == nil || action.CreatedAt.After(*status.LastSentAt) {
			createdAt := action.CreatedAt
			status.LastSentAt = &createdAt
		}
	}

	return status, nil
}

func (s *actionService) ReceivedToday(ctx context.Context, parentID uuid.UUID) ([]*entity.ActionRecord, error) {
	actions, err := s.actionRepo.FindReceivedSince(ctx, parentID, startOfUTCDay(s.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list today's actions")
	}

	received := make([]*entity.ActionRecord, 0, len(actions))
	for _, action := range actions {
		if !action.OriginatedByParent() {
			received = append(received, action)
		}
	}

	return received, nil
}

// publish announces the record on the change feed; failures never fail the caller.
func (s *actionService) publish(ctx context.Context, record *entity.ActionRecord) {
	event := &service.ActionEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.ActionEventInsert,
		Action:    record,
	}

	if err := s.publisher.PublishActionEvent(ctx, event); err != nil {
		s.getLogger(ctx).Warn("[Action] Failed to publish action event",
			slog.String("action_id", record.ID.String()),
			slog.Any("error", err),
		)
	}
}

func newActionRecord(input usecase.SendActionInput, now time.Time) *entity.ActionRecord {
	return &entity.ActionRecord{
		GroupID:           input.Pairing.GroupID,
		SenderGuardianID:  input.Pairing.GuardianID,
		RecipientParentID: input.Pairing.ParentID,
		Kind:              input.Kind,
		Status:            entity.ActionStatusPending,
		MediaURL:          input.MediaURL,
		TextMessage:       normalizeText(input.TextMessage),
		OriginatorRole:    input.OriginatorRole,
		AdWatched:         input.AdWatched,
		CreatedAt:         now.UTC(),
	}
}

// normalizeText maps blank text to nil.
func normalizeText(text *string) *string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil
	}

	return text
}

func startOfUTCDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
