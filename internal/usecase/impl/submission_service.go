package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SubmissionServiceParams holds dependencies for the submission flow registry, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	Ads      service.RewardedAdFactory
	Actions  usecase.ActionUsecase
	Uploader usecase.MediaUploader
	Family   usecase.FamilyUsecase
	Lock     service.SubmissionLock
	Metrics  service.CoordinatorMetrics
	Logger   *slog.Logger
	Settings SubmissionSettings
}

// SubmissionSettings are the configured submission policies
type SubmissionSettings struct {
	AdErrorPolicy string
	LockTTL       time.Duration
}

type submissionService struct {
	deps    SubmissionDependencies
	baseCtx context.Context
	cancel  context.CancelFunc

	mu    sync.Mutex
	flows map[uuid.UUID]usecase.SubmissionFlow
}

// NewSubmissionService creates the registry owning one submission flow per guardian
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	baseCtx, cancel := context.WithCancel(context.Background())

	return &submissionService{
		deps: SubmissionDependencies{
			Ads:           params.Ads,
			Actions:       params.Actions,
			Uploader:      params.Uploader,
			Family:        params.Family,
			Lock:          params.Lock,
			Metrics:       params.Metrics,
			Logger:        params.Logger,
			AdErrorPolicy: params.Settings.AdErrorPolicy,
			LockTTL:       params.Settings.LockTTL,
		},
		baseCtx: baseCtx,
		cancel:  cancel,
		flows:   make(map[uuid.UUID]usecase.SubmissionFlow),
	}
}

func (s *submissionService) flow(guardianID uuid.UUID, create bool) usecase.SubmissionFlow {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.flows[guardianID]
	if !ok && create {
		flow = NewSubmissionFlow(s.baseCtx, guardianID, s.deps)
		s.flows[guardianID] = flow
	}

	return flow
}

func (s *submissionService) Start(ctx context.Context, guardianID uuid.UUID, payload entity.SubmissionPayload) (entity.SubmissionSnapshot, error) {
	flow := s.flow(guardianID, true)
	err := flow.Start(ctx, payload)

	return flow.Snapshot(), err
}

func (s *submissionService) Retry(ctx context.Context, guardianID uuid.UUID) (entity.SubmissionSnapshot, error) {
	flow := s.flow(guardianID, true)
	err := flow.Retry(ctx)

	return flow.Snapshot(), err
}

func (s *submissionService) Dismiss(ctx context.Context, guardianID uuid.UUID) (entity.SubmissionSnapshot, error) {
	flow := s.flow(guardianID, true)
	err := flow.Dismiss(ctx)

	return flow.Snapshot(), err
}

func (s *submissionService) Snapshot(_ context.Context, guardianID uuid.UUID) entity.SubmissionSnapshot {
	flow := s.flow(guardianID, false)
	if flow == nil {
		return entity.SubmissionSnapshot{
			State:   entity.SubmissionIdle,
			AdState: entity.AdIdle,
		}
	}

	return flow.Snapshot()
}

func (s *submissionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for guardianID, flow := range s.flows {
		flow.Close()
		delete(s.flows, guardianID)
	}
	s.cancel()
}
