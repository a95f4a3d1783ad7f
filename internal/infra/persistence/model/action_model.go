package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionModel mirrors the 'action_logs' table.
type ActionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GroupID           uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderGuardianID  uuid.UUID `gorm:"type:uuid;not null;index:idx_action_logs_sender_created,priority:1"`
	RecipientParentID uuid.UUID `gorm:"type:uuid;not null;index:idx_action_logs_recipient_created,priority:1"`
	Kind              string    `gorm:"type:varchar(20);not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:pending"`
	MediaURL          *string   `gorm:"type:text"`
	TextMessage       *string   `gorm:"type:text"`
	OriginatorRole    *string   `gorm:"type:varchar(20)"`
	AdWatched         bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"index:idx_action_logs_sender_created,priority:2;index:idx_action_logs_recipient_created,priority:2"`
	PlayedAt          *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActionModel) TableName() string {
	return "action_logs"
}
