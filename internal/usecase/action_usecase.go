package usecase

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
)

// SendActionInput is an action ready to be inserted
type SendActionInput struct {
	Pairing        entity.Pairing
	Kind           entity.ActionKind
	TextMessage    *string
	MediaURL       *string
	OriginatorRole entity.Role
	AdWatched      bool
}

// ParentMessageInput is a message a parent sends back to the family
type ParentMessageInput struct {
	TextMessage *string
	Media       *entity.MediaAttachment
}

// ActionUsecase defines the action-log use cases
type ActionUsecase interface {
	// SendAction inserts the action and announces it on the change feed
	SendAction(ctx context.Context, input SendActionInput) (*entity.ActionRecord, error)

	// MarkConsumed moves a pending action of the parent to played or viewed
	MarkConsumed(ctx context.Context, parentID, actionID uuid.UUID, status entity.ActionStatus) (*entity.ActionRecord, error)

	// SendWakeAlert sends the parent's once-a-day wake-up check-in
	SendWakeAlert(ctx context.Context, parentID uuid.UUID) (*entity.ActionRecord, error)

	// SendParentMessage sends a parent message, uploading media first when attached
	SendParentMessage(ctx context.Context, parentID uuid.UUID, input ParentMessageInput) (*entity.ActionRecord, error)

	// TodayStatus summarises the guardian's actions sent today
	TodayStatus(ctx context.Context, guardianID uuid.UUID) (*entity.TodayStatus, error)

	// ReceivedToday lists the actions guardians sent the parent today
	ReceivedToday(ctx context.Context, parentID uuid.UUID) ([]*entity.ActionRecord, error)
}

// FamilyUsecase resolves pairings and names
type FamilyUsecase interface {
	// GuardianPairing resolves the latest group of a guardian
	GuardianPairing(ctx context.Context, guardianID uuid.UUID) (*entity.Pairing, error)

	// ParentPairing resolves the group of a parent and its primary guardian
	ParentPairing(ctx context.Context, parentID uuid.UUID) (*entity.Pairing, error)

	// GuardianGroupIDs lists the groups a guardian belongs to
	GuardianGroupIDs(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error)

	// DisplayName returns the profile name, or fallback when missing or on error
	DisplayName(ctx context.Context, profileID uuid.UUID, fallback string) string
}
