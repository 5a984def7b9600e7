package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// AuditRepository appends audit events. Write-only from the engines' view;
// durability and querying of the log belong to the surrounding system.
type AuditRepository interface {
	Append(ctx context.Context, event *domain.AuditEvent) error
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository instantiates repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Append(ctx context.Context, event *domain.AuditEvent) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO audit_events (actor_id, action, details)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		event.ActorID,
		event.Action,
		details,
	).Scan(&event.ID, &event.CreatedAt)
}
