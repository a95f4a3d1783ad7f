package repository

import (
	"context"

	"carebridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGroupNotFound is returned when no family group matches.
var ErrGroupNotFound = errors.New("family group not found")

// FamilyRepository defines the interface for family group membership lookups.
type FamilyRepository interface {
	// FindGroupIDsByGuardian returns every group the guardian is a member of.
	FindGroupIDsByGuardian(ctx context.Context, guardianID uuid.UUID) ([]uuid.UUID, error)

	// FindLatestGroupByGuardian returns the most recently joined group of the guardian.
	FindLatestGroupByGuardian(ctx context.Context, guardianID uuid.UUID) (*entity.FamilyGroup, error)

	// FindGroupByParent returns the most recent group of the parent.
	FindGroupByParent(ctx context.Context, parentID uuid.UUID) (*entity.FamilyGroup, error)

	// FindPrimaryMember returns the primary guardian membership of a group.
	FindPrimaryMember(ctx context.Context, groupID uuid.UUID) (*entity.FamilyMember, error)
}
