package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// QuoteRepository persists quote requests. A partial unique index on
// (employer_id, candidate_id) WHERE status IN ('PENDING','APPROVED') keeps
// the single-active-negotiation invariant atomic.
type QuoteRepository interface {
	Create(ctx context.Context, request *domain.QuoteRequest) error
	Update(ctx context.Context, request *domain.QuoteRequest) error
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
	FindActiveByPair(ctx context.Context, employerID, candidateID string) (*domain.QuoteRequest, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.QuoteRequest, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.QuoteRequest, error)
}

type quoteRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository instantiates repository.
func NewQuoteRepository(pool *pgxpool.Pool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

const quoteSelect = `
        SELECT id, employer_id, candidate_id, status, cost_estimate, items, options,
               selected_option_id, requested_at, resolved_at, created_at, updated_at
        FROM quote_requests`

func (r *quoteRepository) Create(ctx context.Context, request *domain.QuoteRequest) error {
	items, options, err := marshalQuoteJSON(request)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO quote_requests (employer_id, candidate_id, status, cost_estimate, items,
            options, selected_option_id, requested_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.EmployerID,
		request.CandidateID,
		request.Status,
		request.CostEstimate,
		items,
		options,
		request.SelectedOptionID,
		request.RequestedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *quoteRepository) Update(ctx context.Context, request *domain.QuoteRequest) error {
	items, options, err := marshalQuoteJSON(request)
	if err != nil {
		return err
	}
	const query = `
        UPDATE quote_requests SET status=$1, cost_estimate=$2, items=$3, options=$4,
            selected_option_id=$5, resolved_at=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		request.Status,
		request.CostEstimate,
		items,
		options,
		request.SelectedOptionID,
		request.ResolvedAt,
		request.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	const query = quoteSelect + ` WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanQuoteRow(row)
}

func (r *quoteRepository) FindActiveByPair(ctx context.Context, employerID, candidateID string) (*domain.QuoteRequest, error) {
	const query = quoteSelect + ` WHERE employer_id=$1 AND candidate_id=$2 AND status IN ($3,$4)`
	row := r.pool.QueryRow(ctx, query, employerID, candidateID,
		domain.QuoteStatusPending, domain.QuoteStatusApproved)
	return scanQuoteRow(row)
}

func (r *quoteRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.QuoteRequest, error) {
	const query = quoteSelect + ` WHERE employer_id=$1 ORDER BY requested_at DESC`
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuoteRows(rows)
}

func (r *quoteRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.QuoteRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = quoteSelect + ` ORDER BY requested_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuoteRows(rows)
}

func marshalQuoteJSON(request *domain.QuoteRequest) ([]byte, []byte, error) {
	items, err := json.Marshal(request.Items)
	if err != nil {
		return nil, nil, err
	}
	options, err := json.Marshal(request.Options)
	if err != nil {
		return nil, nil, err
	}
	return items, options, nil
}

func scanQuoteRow(row pgx.Row) (*domain.QuoteRequest, error) {
	var (
		request domain.QuoteRequest
		items   []byte
		options []byte
	)
	if err := row.Scan(
		&request.ID,
		&request.EmployerID,
		&request.CandidateID,
		&request.Status,
		&request.CostEstimate,
		&items,
		&options,
		&request.SelectedOptionID,
		&request.RequestedAt,
		&request.ResolvedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &request.Items); err != nil {
			return nil, err
		}
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &request.Options); err != nil {
			return nil, err
		}
	}
	return &request, nil
}

func scanQuoteRows(rows pgx.Rows) ([]domain.QuoteRequest, error) {
	var result []domain.QuoteRequest
	for rows.Next() {
		request, err := scanQuoteRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *request)
	}
	return result, rows.Err()
}
