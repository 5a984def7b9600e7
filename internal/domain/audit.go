package domain

import "time"

// AuditEvent is one append-only record of a state-changing action.
type AuditEvent struct {
	ID        string
	ActorID   string
	Action    string
	Details   map[string]any
	CreatedAt time.Time
}
