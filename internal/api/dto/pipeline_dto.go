package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// UpsertPipelineRequest payload for stage changes.
type UpsertPipelineRequest struct {
	CandidateID string                `json:"candidate_id"`
	Status      domain.PipelineStatus `json:"status"`
}

// PipelineEntryResponse pairs a relation with its projected candidate.
type PipelineEntryResponse struct {
	ID          string                `json:"id"`
	EmployerID  string                `json:"employer_id"`
	CandidateID string                `json:"candidate_id"`
	Status      domain.PipelineStatus `json:"status"`
	Candidate   CandidateResponse     `json:"candidate"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}
