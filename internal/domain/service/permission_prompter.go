package service

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionPrompter reads and requests the platform notification permission of a user.
type PermissionPrompter interface {
	// Status returns the permission last reported by the platform without prompting.
	Status(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error)

	// Prompt asks the platform to show its permission prompt and returns the resulting status.
	Prompt(ctx context.Context, userID uuid.UUID) (entity.PermissionStatus, error)
}
