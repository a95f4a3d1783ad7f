package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"carebridge/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attributes used for filtering and tracing
const (
	attrActionID  = "action_id"
	attrKind      = "kind"
	attrType      = "type"
	attrRequestID = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message.
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func encodeEvent(event *service.ActionEvent) ([]byte, map[string]string, error) {
	if event == nil || event.Action == nil {
		return nil, nil, errors.New("action event has no action")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		attrActionID: event.Action.ID.String(),
		attrKind:     string(event.Action.Kind),
		attrType:     event.Type,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeEvent parses a published action event
func DecodeEvent(data []byte) (*service.ActionEvent, error) {
	var event service.ActionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode action event")
	}
	if event.Action == nil {
		return nil, errors.New("action event has no action")
	}

	return &event, nil
}

// DecodePushMessage unwraps the base64 payload of a push envelope
func DecodePushMessage(msg *PushMessage) (*service.ActionEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	event, err := DecodeEvent(data)
	if err != nil {
		return nil, err
	}
	if event.RequestID == "" {
		event.RequestID = msg.Message.Attributes[attrRequestID]
	}

	return event, nil
}
