package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
)

// AuditRecorder persists every dispatched action into the append-only audit
// log. Recording failures are logged and swallowed so a broken sink never
// rolls back the action that triggered it.
type AuditRecorder struct {
	dispatcher events.Dispatcher
	audits     repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditRecorder creates the recorder.
func NewAuditRecorder(dispatcher events.Dispatcher, audits repository.AuditRepository, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{
		dispatcher: dispatcher,
		audits:     audits,
		logger:     logger,
	}
}

// RegisterHandlers subscribes the recorder to every known action.
func (a *AuditRecorder) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, action := range events.AllActions {
		a.dispatcher.Subscribe(action, a.record)
	}
}

func (a *AuditRecorder) record(ctx context.Context, event events.Event) error {
	details := make(map[string]any, len(event.Details)+1)
	for key, value := range event.Details {
		details[key] = value
	}
	if event.EntityID != "" {
		details["entity_id"] = event.EntityID
	}

	entry := &domain.AuditEvent{
		ActorID: event.ActorID,
		Action:  string(event.Action),
		Details: details,
	}
	if err := a.audits.Append(ctx, entry); err != nil {
		a.logger.Error("audit append failed",
			zap.String("action", string(event.Action)),
			zap.String("actor_id", event.ActorID),
			zap.Error(err))
		return err
	}
	a.logger.Info("audit",
		zap.String("action", string(event.Action)),
		zap.String("actor_id", event.ActorID),
		zap.String("entity_id", event.EntityID))
	return nil
}
