package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// ConsentRepository persists consent requests. A partial unique index on
// (employer_id, candidate_id) WHERE status='PENDING' makes the duplicate
// pending check atomic against concurrent creators.
type ConsentRepository interface {
	Create(ctx context.Context, request *domain.ConsentRequest) error
	Update(ctx context.Context, request *domain.ConsentRequest) error
	GetByID(ctx context.Context, id string) (*domain.ConsentRequest, error)
	FindPendingByPair(ctx context.Context, employerID, candidateID string) (*domain.ConsentRequest, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.ConsentRequest, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.ConsentRequest, error)
}

type consentRepository struct {
	pool *pgxpool.Pool
}

// NewConsentRepository instantiates repository.
func NewConsentRepository(pool *pgxpool.Pool) ConsentRepository {
	return &consentRepository{pool: pool}
}

func (r *consentRepository) Create(ctx context.Context, request *domain.ConsentRequest) error {
	const query = `
        INSERT INTO consent_requests (employer_id, candidate_id, status, message)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		request.EmployerID,
		request.CandidateID,
		request.Status,
		request.Message,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *consentRepository) Update(ctx context.Context, request *domain.ConsentRequest) error {
	const query = `
        UPDATE consent_requests SET status=$1, message=$2, responded_at=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		request.Status,
		request.Message,
		request.RespondedAt,
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

func (r *consentRepository) GetByID(ctx context.Context, id string) (*domain.ConsentRequest, error) {
	const query = consentSelect + ` WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanConsentRow(row)
}

func (r *consentRepository) FindPendingByPair(ctx context.Context, employerID, candidateID string) (*domain.ConsentRequest, error) {
	const query = consentSelect + ` WHERE employer_id=$1 AND candidate_id=$2 AND status=$3`
	row := r.pool.QueryRow(ctx, query, employerID, candidateID, domain.ConsentStatusPending)
	return scanConsentRow(row)
}

func (r *consentRepository) ListByCandidate(ctx context.Context, candidateID string) ([]domain.ConsentRequest, error) {
	const query = consentSelect + ` WHERE candidate_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConsentRows(rows)
}

func (r *consentRepository) ListByEmployer(ctx context.Context, employerID string) ([]domain.ConsentRequest, error) {
	const query = consentSelect + ` WHERE employer_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanConsentRows(rows)
}

const consentSelect = `
        SELECT id, employer_id, candidate_id, status, message, responded_at, created_at, updated_at
        FROM consent_requests`

func scanConsentRow(row pgx.Row) (*domain.ConsentRequest, error) {
	var request domain.ConsentRequest
	if err := row.Scan(
		&request.ID,
		&request.EmployerID,
		&request.CandidateID,
		&request.Status,
		&request.Message,
		&request.RespondedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func scanConsentRows(rows pgx.Rows) ([]domain.ConsentRequest, error) {
	var result []domain.ConsentRequest
	for rows.Next() {
		request, err := scanConsentRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *request)
	}
	return result, rows.Err()
}
