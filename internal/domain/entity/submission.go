package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionState is the state of a guardian's reward-gated submission flow.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionLoading    SubmissionState = "loading"
	SubmissionShown      SubmissionState = "shown"
	SubmissionCommitting SubmissionState = "committing"
	SubmissionErrorShown SubmissionState = "errorShown"
)

// AdState is the lifecycle of a single rewarded ad session.
type AdState string

const (
	AdIdle    AdState = "idle"
	AdLoading AdState = "loading"
	AdShown   AdState = "shown"
	AdEarned  AdState = "earned"
	AdErrored AdState = "errored"
	AdClosed  AdState = "closed"
)

// AdEventType is a callback type emitted by a rewarded ad.
type AdEventType string

const (
	AdEventLoaded       AdEventType = "loaded"
	AdEventEarnedReward AdEventType = "earned_reward"
	AdEventError        AdEventType = "error"
	AdEventClosed       AdEventType = "closed"
)

// IsValid checks if the event type is known.
func (t AdEventType) IsValid() bool {
	switch t {
	case AdEventLoaded, AdEventEarnedReward, AdEventError, AdEventClosed:
		return true
	default:
		return false
	}
}

// AdEvent is a single callback from a rewarded ad.
type AdEvent struct {
	Type    AdEventType `json:"type"`
	Message string      `json:"message,omitempty"` // Error text for AdEventError.
}

// MediaAttachment is media captured on the device and pending upload.
// URI is a local file path, a blob:/data: URI or a remote URL; Base64 is set
// when the client already encoded the bytes.
type MediaAttachment struct {
	URI    string     `json:"uri,omitempty"`
	Base64 string     `json:"base64,omitempty"`
	Hint   ActionKind `json:"hint,omitempty"` // photo or video when a message carries an attachment
}

// SubmissionPayload is what a guardian wants to send once the gate is satisfied.
type SubmissionPayload struct {
	Kind        ActionKind       `json:"kind"`
	TextMessage *string          `json:"text_message,omitempty"`
	Media       *MediaAttachment `json:"media,omitempty"`
}

// Alert is the user-facing acknowledgment of a terminal transition.
type Alert struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Code      string    `json:"code,omitempty"`
	At        time.Time `json:"at"`
}

// SubmissionSnapshot is a point-in-time view of a submission flow.
type SubmissionSnapshot struct {
	State     SubmissionState    `json:"state"`
	AdState   AdState            `json:"ad_state"`
	Payload   *SubmissionPayload `json:"payload,omitempty"`
	LastAlert *Alert             `json:"last_alert,omitempty"`
	// LastActionID is the id of the most recently committed action.
	LastActionID *uuid.UUID `json:"last_action_id,omitempty"`
}
