// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// NotificationContent is the title and body shown to the recipient.
type NotificationContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotificationEvent is a transient, at-most-once alert built from an action.
// It is never persisted.
type NotificationEvent struct {
	ActionID    uuid.UUID  `json:"action_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Kind        ActionKind `json:"kind"`
	SenderName  string     `json:"sender_name"`
	NotificationContent
}

// Data returns the payload attached to the platform notification.
func (e *NotificationEvent) Data() map[string]string {
	return map[string]string{
		"action_id": e.ActionID.String(),
		"kind":      string(e.Kind),
	}
}
