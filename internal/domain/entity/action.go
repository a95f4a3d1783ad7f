// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind is the kind of care action exchanged inside a family group.
type ActionKind string

const (
	ActionKindCheckIn    ActionKind = "check_in"
	ActionKindVoiceCheer ActionKind = "voice_cheer"
	ActionKindMessage    ActionKind = "message"
	ActionKindPhoto      ActionKind = "photo"
	ActionKindVideo      ActionKind = "video"
)

// IsValid checks if the kind is one of the known action kinds.
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionKindCheckIn, ActionKindVoiceCheer, ActionKindMessage, ActionKindPhoto, ActionKindVideo:
		return true
	default:
		return false
	}
}

// ActionStatus is the consumption state of an action on the parent side.
type ActionStatus string

const (
	ActionStatusPending ActionStatus = "pending"
	ActionStatusPlayed  ActionStatus = "played"
	ActionStatusViewed  ActionStatus = "viewed"
)

// IsValid checks if the status is one of the known statuses.
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusPlayed, ActionStatusViewed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether status may move to next. Status only moves
// forward out of pending; consumed statuses are terminal.
func (s ActionStatus) CanTransitionTo(next ActionStatus) bool {
	return s == ActionStatusPending && (next == ActionStatusPlayed || next == ActionStatusViewed)
}

// WakeAlertText is the text a parent's "I'm awake" check-in carries.
// Legacy rows without an originator tag are recognised by it.
const WakeAlertText = "일어났어요! ☀️"

// ActionRecord is a single care action persisted by the backend.
type ActionRecord struct {
	ID                uuid.UUID    `json:"id"`                     // Backend-assigned identifier; immutable.
	GroupID           uuid.UUID    `json:"group_id"`               // The family group the action belongs to.
	SenderGuardianID  uuid.UUID    `json:"sender_guardian_id"`     // The guardian on the sending side of the pairing.
	RecipientParentID uuid.UUID    `json:"recipient_parent_id"`    // The parent on the receiving side of the pairing.
	Kind              ActionKind   `json:"kind"`                   // What the action is.
	Status            ActionStatus `json:"status"`                 // Consumption state, forward-only.
	MediaURL          *string      `json:"media_url,omitempty"`    // Public URL of the attached media, nil when none.
	TextMessage       *string      `json:"text_message,omitempty"` // Optional text body.
	OriginatorRole    Role         `json:"originator_role,omitempty"`
	AdWatched         bool         `json:"ad_watched"` // Whether the reward gate was satisfied.
	CreatedAt         time.Time    `json:"created_at"`
	PlayedAt          *time.Time   `json:"played_at,omitempty"` // Set once on first consumption.
}

// Text returns the text message or an empty string.
func (a *ActionRecord) Text() string {
	if a.TextMessage == nil {
		return ""
	}

	return *a.TextMessage
}

// HasMedia reports whether media is attached.
func (a *ActionRecord) HasMedia() bool {
	return a.MediaURL != nil && *a.MediaURL != ""
}

// OriginatedByParent reports whether the parent created this action. The
// explicit originator tag wins; untagged rows fall back to the kind/text
// convention older clients relied on.
func (a *ActionRecord) OriginatedByParent() bool {
	if a.OriginatorRole != "" {
		return a.OriginatorRole == RoleParent
	}

	return a.Kind == ActionKindMessage || a.Text() == WakeAlertText
}

// TodayStatus summarises what a guardian already sent today (UTC).
type TodayStatus struct {
	Count      int        `json:"count"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}
