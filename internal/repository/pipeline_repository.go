package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// PipelineRepository persists employer-candidate funnel relations.
// Upsert relies on the unique (employer_id, candidate_id) constraint so
// concurrent writers cannot create duplicate relations.
type PipelineRepository interface {
	Upsert(ctx context.Context, relation *domain.PipelineRelation) error
	GetByPair(ctx context.Context, employerID, candidateID string) (*domain.PipelineRelation, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.PipelineRelation, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.PipelineRelation, error)
}

type pipelineRepository struct {
	pool *pgxpool.Pool
}

// NewPipelineRepository instantiates repository.
func NewPipelineRepository(pool *pgxpool.Pool) PipelineRepository {
	return &pipelineRepository{pool: pool}
}

func (r *pipelineRepository) Upsert(ctx context.Context, relation *domain.PipelineRelation) error {
	const query = `
        INSERT INTO pipeline_relations (employer_id, candidate_id, status)
        VALUES ($1,$2,$3)
        ON CONFLICT (employer_id, candidate_id)
        DO UPDATE SET status=EXCLUDED.status, updated_at=NOW()
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		relation.EmployerID,
		relation.CandidateID,
		relation.Status,
	).Scan(&relation.ID, &relation.CreatedAt, &relation.UpdatedAt)
}

func (r *pipelineRepository) GetByPair(ctx context.Context, employerID, candidateID string) (*domain.PipelineRelation, error) {
	const query = `
        SELECT id, employer_id, candidate_id, status, created_at, updated_at
        FROM pipeline_relations WHERE employer_id=$1 AND candidate_id=$2`
	var relation domain.PipelineRelation
	if err := r.pool.QueryRow(ctx, query, employerID, candidateID).Scan(
		&relation.ID,
		&relation.EmployerID,
		&relation.CandidateID,
		&relation.Status,
		&relation.CreatedAt,
		&relation.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &relation, nil
}

func (r *pipelineRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.PipelineRelation, error) {
	const query = `
        SELECT id, employer_id, candidate_id, status, created_at, updated_at
        FROM pipeline_relations WHERE employer_id=$1 ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPipelineRelations(rows)
}

func (r *pipelineRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.PipelineRelation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, employer_id, candidate_id, status, created_at, updated_at
        FROM pipeline_relations ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPipelineRelations(rows)
}

func scanPipelineRelations(rows pgx.Rows) ([]domain.PipelineRelation, error) {
	var result []domain.PipelineRelation
	for rows.Next() {
		var relation domain.PipelineRelation
		if err := rows.Scan(
			&relation.ID,
			&relation.EmployerID,
			&relation.CandidateID,
			&relation.Status,
			&relation.CreatedAt,
			&relation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, relation)
	}
	return result, rows.Err()
}
