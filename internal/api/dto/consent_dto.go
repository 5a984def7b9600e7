package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// CreateConsentRequest payload for opening a consent request.
type CreateConsentRequest struct {
	CandidateID string `json:"candidate_id"`
	Message     string `json:"message"`
}

// ConsentDecisionRequest payload for the candidate's response.
type ConsentDecisionRequest struct {
	Decision domain.ConsentStatus `json:"decision"`
}

// ConsentResponse is the read shape of a consent request.
type ConsentResponse struct {
	ID          string               `json:"id"`
	EmployerID  string               `json:"employer_id"`
	CandidateID string               `json:"candidate_id"`
	Status      domain.ConsentStatus `json:"status"`
	Message     string               `json:"message,omitempty"`
	RespondedAt *time.Time           `json:"responded_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
