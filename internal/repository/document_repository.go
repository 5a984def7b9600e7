package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// DocumentRepository stores pointers to uploaded candidate documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Document, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository instantiates repository.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (candidate_id, kind, storage_url, verified, verified_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		doc.CandidateID,
		doc.Kind,
		doc.StorageURL,
		doc.Verified,
		doc.VerifiedBy,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	const query = `
        SELECT id, candidate_id, kind, storage_url, verified, verified_by, created_at, updated_at
        FROM documents WHERE id=$1`
	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.CandidateID,
		&doc.Kind,
		&doc.StorageURL,
		&doc.Verified,
		&doc.VerifiedBy,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) error {
	const query = `
        UPDATE documents SET kind=$1, storage_url=$2, verified=$3, verified_by=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		doc.Kind,
		doc.StorageURL,
		doc.Verified,
		doc.VerifiedBy,
		doc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Document, error) {
	const query = `
        SELECT id, candidate_id, kind, storage_url, verified, verified_by, created_at, updated_at
        FROM documents WHERE candidate_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.CandidateID,
			&doc.Kind,
			&doc.StorageURL,
			&doc.Verified,
			&doc.VerifiedBy,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}
