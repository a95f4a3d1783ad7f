package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubmissionLock guarantees at most one in-flight submission per user across replicas.
type SubmissionLock interface {
	// Acquire takes the user's lock for ttl. It returns false when the lock is held.
	Acquire(ctx context.Context, userID uuid.UUID, ttl time.Duration) (bool, error)

	// Release frees the user's lock.
	Release(ctx context.Context, userID uuid.UUID) error
}
