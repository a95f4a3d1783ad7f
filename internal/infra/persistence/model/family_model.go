package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyGroupModel mirrors the 'family_groups' table.
type FamilyGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	Members []FamilyMemberModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (FamilyGroupModel) TableName() string {
	return "family_groups"
}

// FamilyMemberModel mirrors the 'family_members' table. (GroupID, GuardianID) is unique.
type FamilyMemberModel struct {
	GroupID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuardianID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role       string    `gorm:"type:varchar(20);not null;default:secondary"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FamilyMemberModel) TableName() string {
	return "family_members"
}
