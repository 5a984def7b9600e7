package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// CreateQuoteRequest payload for opening a quote request.
type CreateQuoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// ResolveQuoteRequest payload for the staff decision.
type ResolveQuoteRequest struct {
	Decision     domain.QuoteStatus `json:"decision"`
	CostEstimate string             `json:"cost_estimate"`
}

// SelectOptionRequest payload for the employer's tier pick.
type SelectOptionRequest struct {
	OptionID string `json:"option_id"`
}

// QuoteResponse is the read shape of a quote request.
type QuoteResponse struct {
	ID               string               `json:"id"`
	EmployerID       string               `json:"employer_id"`
	CandidateID      string               `json:"candidate_id"`
	Status           domain.QuoteStatus   `json:"status"`
	CostEstimate     string               `json:"cost_estimate,omitempty"`
	Items            []domain.QuoteItem   `json:"items"`
	Options          []domain.QuoteOption `json:"options"`
	SelectedOptionID *string              `json:"selected_option_id,omitempty"`
	RequestedAt      time.Time            `json:"requested_at"`
	ResolvedAt       *time.Time           `json:"resolved_at,omitempty"`
}

// QuoteEntryResponse joins a request with its projected candidate for
// listings.
type QuoteEntryResponse struct {
	QuoteResponse
	Candidate CandidateResponse `json:"candidate"`
}
