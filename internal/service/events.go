package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/talent-bridge/internal/events"
)

// publishEvent emits an audit event after the owning engine committed its
// state change. A nil dispatcher disables emission.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, action events.Action, actorID, entityID string, details map[string]any) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Action:    action,
		ActorID:   actorID,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Details:   details,
	})
}
