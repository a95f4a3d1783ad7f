package impl

import (
	"fmt"

	"carebridge/internal/domain/entity"
)

const (
	messagePreviewLength = 30

	// Sender labels used when the profile lookup fails or the name is empty
	fallbackGuardianLabel = "Family"
	fallbackParentLabel   = "Parent"
)

// SelectContent maps an action kind and its text to the notification title and body.
func SelectContent(kind entity.ActionKind, senderName string, text *string) entity.NotificationContent {
	message := ""
	if text != nil {
		message = *text
	}

	switch kind {
	case entity.ActionKindCheckIn:
		if message == entity.WakeAlertText {
			return entity.NotificationContent{Title: "🌞 Wake alert", Body: fmt.Sprintf("%s woke up!", senderName)}
		}

		return checkInContent(senderName)
	case entity.ActionKindVoiceCheer:
		return entity.NotificationContent{Title: "🎙️ Voice message", Body: fmt.Sprintf("%s sent a voice message!", senderName)}
	case entity.ActionKindPhoto:
		return entity.NotificationContent{Title: "📸 Photo check-in", Body: fmt.Sprintf("%s sent a photo!", senderName)}
	case entity.ActionKindVideo:
		return entity.NotificationContent{Title: "🎬 Video check-in", Body: fmt.Sprintf("%s sent a video!", senderName)}
	case entity.ActionKindMessage:
		if message != "" {
			return entity.NotificationContent{Title: "💌 New message", Body: fmt.Sprintf("%s: %s", senderName, previewMessage(message))}
		}

		return entity.NotificationContent{Title: "💌 New message", Body: fmt.Sprintf("%s sent a message!", senderName)}
	default:
		return checkInContent(senderName)
	}
}

func checkInContent(senderName string) entity.NotificationContent {
	return entity.NotificationContent{Title: "💌 Check-in arrived", Body: fmt.Sprintf("%s sent a check-in!", senderName)}
}

// previewMessage truncates to messagePreviewLength characters, counting runes.
func previewMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= messagePreviewLength {
		return message
	}

	return string(runes[:messagePreviewLength]) + "..."
}
