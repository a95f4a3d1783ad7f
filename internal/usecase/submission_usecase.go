package usecase

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionFlow is the reward-gated submission state machine of one guardian
type SubmissionFlow interface {
	// Start captures the payload and requests an ad. Rejected unless idle.
	Start(ctx context.Context, payload entity.SubmissionPayload) error

	// Retry requests a new ad for the retained payload from errorShown
	Retry(ctx context.Context) error

	// Dismiss abandons the retained payload from errorShown
	Dismiss(ctx context.Context) error

	// Snapshot returns the current state
	Snapshot() entity.SubmissionSnapshot

	// Close tears down any live ad and releases the flow
	Close()
}

// SubmissionUsecase owns one submission flow per guardian
type SubmissionUsecase interface {
	Start(ctx context.Context, guardianID uuid.UUID, payload entity.SubmissionPayload) (entity.SubmissionSnapshot, error)
	Retry(ctx context.Context, guardianID uuid.UUID) (entity.SubmissionSnapshot, error)
	Dismiss(ctx context.Context, guardianID uuid.UUID) (entity.SubmissionSnapshot, error)
	Snapshot(ctx context.Context, guardianID uuid.UUID) entity.SubmissionSnapshot
	Close()
}

// MediaUploader stores attached media and returns its public URL
type MediaUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, kind entity.ActionKind, media *entity.MediaAttachment) (string, error)
}
