package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// CandidateFilter captures talent-pool search parameters. Skill matching is a
// plain case-insensitive substring check, nothing smarter.
type CandidateFilter struct {
	Skill  *string
	Limit  int
	Offset int
}

// CandidateRepository provides joined account+profile reads and profile writes.
type CandidateRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*domain.Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error)
	UpsertProfile(ctx context.Context, profile *domain.CandidateProfile) error
}

type candidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository instantiates repository.
func NewCandidateRepository(pool *pgxpool.Pool) CandidateRepository {
	return &candidateRepository{pool: pool}
}

const candidateColumns = `
        a.id, a.role, a.name, a.email, a.password_hash, a.verification_status, a.is_verified,
        a.created_at, a.updated_at,
        p.first_name, p.last_name, p.avatar_url, p.address, p.city, p.country, p.nationality,
        p.birth_date, p.phone, p.headline, p.skills, p.experience, p.education, p.created_at, p.updated_at`

func (r *candidateRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Candidate, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM accounts a
        JOIN candidate_profiles p ON p.account_id = a.id
        WHERE a.id=$1 AND a.role=$2`, candidateColumns)

	row := r.pool.QueryRow(ctx, query, accountID, domain.RoleCandidate)
	return scanCandidate(row)
}

func (r *candidateRepository) List(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error) {
	clauses := []string{"a.role=$1"}
	args := []any{domain.RoleCandidate}

	if filter.Skill != nil && strings.TrimSpace(*filter.Skill) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.Skill))+"%")
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest(p.skills) AS s WHERE LOWER(s) LIKE $%d)", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM accounts a
        JOIN candidate_profiles p ON p.account_id = a.id
        WHERE %s ORDER BY a.created_at DESC LIMIT %d OFFSET %d`,
		candidateColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *candidate)
	}
	return result, rows.Err()
}

func (r *candidateRepository) UpsertProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return err
	}
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO candidate_profiles (account_id, first_name, last_name, avatar_url, address,
            city, country, nationality, birth_date, phone, headline, skills, experience, education)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        ON CONFLICT (account_id) DO UPDATE SET
            first_name=EXCLUDED.first_name, last_name=EXCLUDED.last_name,
            avatar_url=EXCLUDED.avatar_url, address=EXCLUDED.address, city=EXCLUDED.city,
            country=EXCLUDED.country, nationality=EXCLUDED.nationality,
            birth_date=EXCLUDED.birth_date, phone=EXCLUDED.phone, headline=EXCLUDED.headline,
            skills=EXCLUDED.skills, experience=EXCLUDED.experience, education=EXCLUDED.education,
            updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.AccountID,
		profile.FirstName,
		profile.LastName,
		profile.AvatarURL,
		profile.Address,
		profile.City,
		profile.Country,
		profile.Nationality,
		profile.BirthDate,
		profile.Phone,
		profile.Headline,
		profile.Skills,
		experience,
		education,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var (
		candidate  domain.Candidate
		experience []byte
		education  []byte
	)
	if err := row.Scan(
		&candidate.Account.ID,
		&candidate.Account.Role,
		&candidate.Account.Name,
		&candidate.Account.Email,
		&candidate.Account.PasswordHash,
		&candidate.Account.VerificationStatus,
		&candidate.Account.IsVerified,
		&candidate.Account.CreatedAt,
		&candidate.Account.UpdatedAt,
		&candidate.Profile.FirstName,
		&candidate.Profile.LastName,
		&candidate.Profile.AvatarURL,
		&candidate.Profile.Address,
		&candidate.Profile.City,
		&candidate.Profile.Country,
		&candidate.Profile.Nationality,
		&candidate.Profile.BirthDate,
		&candidate.Profile.Phone,
		&candidate.Profile.Headline,
		&candidate.Profile.Skills,
		&experience,
		&education,
		&candidate.Profile.CreatedAt,
		&candidate.Profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	candidate.Profile.AccountID = candidate.Account.ID
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &candidate.Profile.Experience); err != nil {
			return nil, err
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &candidate.Profile.Education); err != nil {
			return nil, err
		}
	}
	return &candidate, nil
}
