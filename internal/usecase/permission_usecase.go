package usecase

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionGate caches and requests notification permission for one user
type PermissionGate interface {
	// Current returns the cached status without blocking
	Current() entity.PermissionStatus

	// Request prompts for permission unless it is already granted
	Request(ctx context.Context) (entity.PermissionStatus, error)

	// Refresh re-reads the platform status without prompting
	Refresh(ctx context.Context) (entity.PermissionStatus, error)
}

// PermissionUsecase resolves the permission gate of each user
type PermissionUsecase interface {
	// Gate returns the user's gate, creating it on first use
	Gate(ctx context.Context, userID uuid.UUID) (PermissionGate, error)

	// Current returns the cached status of the user
	Current(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error)

	// Request prompts for the user's permission. PermissionDenied is returned as error
	// alongside a denied status.
	Request(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error)

	// Invalidate drops the cached gate so the next lookup refreshes it
	Invalidate(userID uuid.UUID)
}
