package impl

import (
	"strings"
	"testing"

	"carebridge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestSelectContent_Table(t *testing.T) {
	long := strings.Repeat("가", 31)

	tests := []struct {
		name      string
		kind      entity.ActionKind
		text      *string
		wantTitle string
		wantBody  string
	}{
		{"wake alert", entity.ActionKindCheckIn, strPtr(entity.WakeAlertText), "🌞 Wake alert", "Mom woke up!"},
		{"check in with text", entity.ActionKindCheckIn, strPtr("좋은 아침입니다"), "💌 Check-in arrived", "Mom sent a check-in!"},
		{"check in without text", entity.ActionKindCheckIn, nil, "💌 Check-in arrived", "Mom sent a check-in!"},
		{"voice cheer", entity.ActionKindVoiceCheer, nil, "🎙️ Voice message", "Mom sent a voice message!"},
		{"photo", entity.ActionKindPhoto, strPtr("caption"), "📸 Photo check-in", "Mom sent a photo!"},
		{"video", entity.ActionKindVideo, nil, "🎬 Video check-in", "Mom sent a video!"},
		{"message with short text", entity.ActionKindMessage, strPtr("hello"), "💌 New message", "Mom: hello"},
		{"message with exactly 30 chars", entity.ActionKindMessage, strPtr(strings.Repeat("a", 30)), "💌 New message", "Mom: " + strings.Repeat("a", 30)},
		{"message with long text", entity.ActionKindMessage, strPtr(long), "💌 New message", "Mom: " + strings.Repeat("가", 30) + "..."},
		{"message without text", entity.ActionKindMessage, nil, "💌 New message", "Mom sent a message!"},
		{"message with empty text", entity.ActionKindMessage, strPtr(""), "💌 New message", "Mom sent a message!"},
		{"unknown kind", entity.ActionKind("sticker"), nil, "💌 Check-in arrived", "Mom sent a check-in!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectContent(tt.kind, "Mom", tt.text)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}
