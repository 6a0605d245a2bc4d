package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Notifier is the notification channel consumed by user actions.
// Implementations are fire-and-forget; callers never read a result back.
type Notifier interface {
	Notify(eventType EventType, message string)
}

// RuntimeNotifier emits toasts over the Wails event bus and mirrors each one
// into the runtime log. Before Startup it silently drops events.
type RuntimeNotifier struct {
	ctx context.Context
}

func NewRuntimeNotifier() *RuntimeNotifier {
	return &RuntimeNotifier{}
}

func (n *RuntimeNotifier) Startup(ctx context.Context) {
	n.ctx = ctx
}

func (n *RuntimeNotifier) Notify(eventType EventType, message string) {
	if n.ctx == nil {
		return
	}
	evt := NewToast(eventType, message)
	logRuntimeEvent(n.ctx, evt)
	runtime.EventsEmit(n.ctx, TopicToast, evt)
}

// EmitThemeChange tells the frontend the active theme switched.
func (n *RuntimeNotifier) EmitThemeChange(name string) {
	if n.ctx == nil {
		return
	}
	runtime.EventsEmit(n.ctx, TopicTheme, name)
}
