package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type permissionGate struct {
	userID   uuid.UUID
	prompter service.PermissionPrompter

	// requestMu serializes prompts; current is readable without it
	requestMu sync.Mutex
	current   atomic.Value
}

// NewPermissionGate creates a gate for userID and primes its cache from the platform.
func NewPermissionGate(ctx context.Context, userID uuid.UUID, prompter service.PermissionPrompter) (usecase.PermissionGate, error) {
	gate := &permissionGate{
		userID:   userID,
		prompter: prompter,
	}
	gate.current.Store(entity.PermissionUnsupported)

	if _, err := gate.Refresh(ctx); err != nil {
		return nil, err
	}

	return gate, nil
}

func (g *permissionGate) Current() entity.PermissionStatus {
	status, _ := g.current.Load().(entity.PermissionStatus)

	return status
}

func (g *permissionGate) Request(ctx context.Context) (entity.PermissionStatus, error) {
	if status := g.Current(); status == entity.PermissionGranted {
		return status, nil
	}

	g.requestMu.Lock()
	defer g.requestMu.Unlock()

	// Another caller may have been granted while we waited
	if status := g.Current(); status == entity.PermissionGranted {
		return status, nil
	}

	status, err := g.prompter.Prompt(ctx, g.userID)
	if err != nil {
		return g.Current(), errors.Wrap(err, "failed to prompt for notification permission")
	}
	g.current.Store(status)

	return status, nil
}

func (g *permissionGate) Refresh(ctx context.Context) (entity.PermissionStatus, error) {
	status, err := g.prompter.Status(ctx, g.userID)
	if err != nil {
		return g.Current(), errors.Wrap(err, "failed to read notification permission")
	}
	g.current.Store(status)

	return status, nil
}

type permissionService struct {
	prompter service.PermissionPrompter
	logger   *slog.Logger

	mu    sync.Mutex
	gates map[uuid.UUID]usecase.PermissionGate
}

// NewPermissionService creates the per-user permission gate registry
func NewPermissionService(prompter service.PermissionPrompter, logger *slog.Logger) usecase.PermissionUsecase {
	return &permissionService{
		prompter: prompter,
		logger:   logger,
		gates:    make(map[uuid.UUID]usecase.PermissionGate),
	}
}

func (s *permissionService) Gate(ctx context.Context, userID uuid.UUID) (usecase.PermissionGate, error) {
	s.mu.Lock()
	gate, ok := s.gates[userID]
	s.mu.Unlock()
	if ok {
		return gate, nil
	}

	created, err := NewPermissionGate(ctx, userID, s.prompter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.gates[userID]; ok {
		return existing, nil
	}
	s.gates[userID] = created

	return created, nil
}

func (s *permissionService) Current(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error) {
	gate, err := s.Gate(ctx, userID)
	if err != nil {
		return entity.PermissionUnsupported, err
	}

	return gate.Current(), nil
}

func (s *permissionService) Request(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error) {
	gate, err := s.Gate(ctx, userID)
	if err != nil {
		return entity.PermissionUnsupported, err
	}

	status, err := gate.Request(ctx)
	if err != nil {
		return status, err
	}

	s.logger.Debug("[Permission] Request finished",
		slog.String("user_id", userID.String()),
		slog.String("status", string(status)),
	)

	if status == entity.PermissionDenied {
		return status, errors.WithStack(domainerrors.ErrPermissionDenied)
	}

	return status, nil
}

func (s *permissionService) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.gates, userID)
}
