package service

import (
	"context"

	"carebridge/internal/domain/entity"
)

// ActionEventInsert is the only change the feed carries.
const ActionEventInsert = "INSERT"

// ActionEvent is a change-feed message announcing a new action row
type ActionEvent struct {
	RequestID string               `json:"request_id,omitempty"` // For distributed tracing
	Type      string               `json:"type"`
	Action    *entity.ActionRecord `json:"action"`
}

// EventPublisher defines the interface for publishing action events to the change feed
type EventPublisher interface {
	// PublishActionEvent announces an inserted action
	PublishActionEvent(ctx context.Context, event *ActionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
