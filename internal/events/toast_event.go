package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	TopicToast    = "events:toast"
	TopicTheme    = "events:theme"
	TopicDemo     = "events:demo"
	TopicDemoDone = "events:demo:done"
)

// ToastEvent is the payload for transient notifications shown by the shell.
type ToastEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewToast(eventType EventType, message string) ToastEvent {
	return ToastEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}
