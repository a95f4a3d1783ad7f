// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for action persistence.
var (
	// ErrActionNotFound is returned when an action is not found.
	ErrActionNotFound = errors.New("action not found")
	// ErrActionStatusConflict is returned when the stored status no longer allows the update.
	ErrActionStatusConflict = errors.New("action status changed concurrently")
)

// ActionRepository defines the interface for action-log database operations.
type ActionRepository interface {
	// CreateAction persists a new action. ID and CreatedAt are assigned when zero.
	CreateAction(ctx context.Context, action *entity.ActionRecord) error

	// FindActionByID retrieves an action by its unique ID.
	FindActionByID(ctx context.Context, id uuid.UUID) (*entity.ActionRecord, error)

	// MarkConsumed moves a pending action to status, setting playedAt.
	// Returns ErrActionStatusConflict when the action is no longer pending.
	MarkConsumed(ctx context.Context, id uuid.UUID, status entity.ActionStatus, playedAt time.Time) error

	// FindSentSince lists actions a guardian sent at or after since, newest first.
	FindSentSince(ctx context.Context, guardianID uuid.UUID, since time.Time) ([]*entity.ActionRecord, error)

	// FindReceivedSince lists actions addressed to a parent at or after since, newest first.
	FindReceivedSince(ctx context.Context, parentID uuid.UUID, since time.Time) ([]*entity.ActionRecord, error)

	// HasWakeAlertSince reports whether the parent already sent a wake alert at or after since.
	// Inside a transaction it also serializes concurrent callers for the same parent until commit.
	HasWakeAlertSince(ctx context.Context, parentID uuid.UUID, since time.Time) (bool, error)
}
