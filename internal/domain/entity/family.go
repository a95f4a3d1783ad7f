package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole distinguishes the guardian who created the group from the invited ones.
type MemberRole string

const (
	MemberRolePrimary   MemberRole = "primary"
	MemberRoleSecondary MemberRole = "secondary"
)

// FamilyGroup ties one parent to the guardians caring for them.
type FamilyGroup struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FamilyMember is a guardian's membership in a family group.
type FamilyMember struct {
	GroupID    uuid.UUID  `json:"group_id"`
	GuardianID uuid.UUID  `json:"guardian_id"`
	Role       MemberRole `json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Pairing is the (group, guardian, parent) triple an action is addressed with.
type Pairing struct {
	GroupID    uuid.UUID `json:"group_id"`
	GuardianID uuid.UUID `json:"guardian_id"`
	ParentID   uuid.UUID `json:"parent_id"`
}
