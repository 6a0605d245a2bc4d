package events

import "time"

// DemoEvent is the payload emitted by the Test panel's demo stream.
type DemoEvent struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
