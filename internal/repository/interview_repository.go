package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// InterviewRepository persists interview meetings. Proposed slots are stored
// as a jsonb document; the row update is the per-entity serialization point.
type InterviewRepository interface {
	Create(ctx context.Context, meeting *domain.InterviewMeeting) error
	Update(ctx context.Context, meeting *domain.InterviewMeeting) error
	GetByID(ctx context.Context, id string) (*domain.InterviewMeeting, error)
	ListByParty(ctx context.Context, accountID string) ([]domain.InterviewMeeting, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.InterviewMeeting, error)
}

type interviewRepository struct {
	pool *pgxpool.Pool
}

// NewInterviewRepository instantiates repository.
func NewInterviewRepository(pool *pgxpool.Pool) InterviewRepository {
	return &interviewRepository{pool: pool}
}

const interviewSelect = `
        SELECT id, employer_id, candidate_id, scheduled_by, title, proposed_times,
               confirmed_time, status, meeting_room_id, notes, created_at, updated_at
        FROM interview_meetings`

func (r *interviewRepository) Create(ctx context.Context, meeting *domain.InterviewMeeting) error {
	slots, err := json.Marshal(meeting.ProposedTimes)
	if err != nil {
		return err
	}
	const query = `
        INSERT INTO interview_meetings (employer_id, candidate_id, scheduled_by, title,
            proposed_times, confirmed_time, status, meeting_room_id, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		meeting.EmployerID,
		meeting.CandidateID,
		meeting.ScheduledBy,
		meeting.Title,
		slots,
		meeting.ConfirmedTime,
		meeting.Status,
		meeting.MeetingRoomID,
		meeting.Notes,
	).Scan(&meeting.ID, &meeting.CreatedAt, &meeting.UpdatedAt)
}

func (r *interviewRepository) Update(ctx context.Context, meeting *domain.InterviewMeeting) error {
	slots, err := json.Marshal(meeting.ProposedTimes)
	if err != nil {
		return err
	}
	const query = `
        UPDATE interview_meetings SET title=$1, proposed_times=$2, confirmed_time=$3,
            status=$4, notes=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		meeting.Title,
		slots,
		meeting.ConfirmedTime,
		meeting.Status,
		meeting.Notes,
		meeting.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interviewRepository) GetByID(ctx context.Context, id string) (*domain.InterviewMeeting, error) {
	const query = interviewSelect + ` WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanInterviewRow(row)
}

func (r *interviewRepository) ListByParty(ctx context.Context, accountID string) ([]domain.InterviewMeeting, error) {
	const query = interviewSelect + ` WHERE employer_id=$1 OR candidate_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviewRows(rows)
}

func (r *interviewRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.InterviewMeeting, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = interviewSelect + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInterviewRows(rows)
}

func scanInterviewRow(row pgx.Row) (*domain.InterviewMeeting, error) {
	var (
		meeting domain.InterviewMeeting
		slots   []byte
	)
	if err := row.Scan(
		&meeting.ID,
		&meeting.EmployerID,
		&meeting.CandidateID,
		&meeting.ScheduledBy,
		&meeting.Title,
		&slots,
		&meeting.ConfirmedTime,
		&meeting.Status,
		&meeting.MeetingRoomID,
		&meeting.Notes,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &meeting.ProposedTimes); err != nil {
			return nil, err
		}
	}
	return &meeting, nil
}

func scanInterviewRows(rows pgx.Rows) ([]domain.InterviewMeeting, error) {
	var result []domain.InterviewMeeting
	for rows.Next() {
		meeting, err := scanInterviewRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *meeting)
	}
	return result, rows.Err()
}
