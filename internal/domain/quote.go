package domain

import "time"

// QuoteStatus enumerates quote-request lifecycle states. APPROVED and
// REJECTED are terminal for the status field; option selection may still
// change after approval.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "PENDING"
	QuoteStatusApproved QuoteStatus = "APPROVED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
)

// QuoteItem is one line of an itemized cost breakdown.
type QuoteItem struct {
	Label       string `json:"label"`
	Amount      int    `json:"amount"`
	Description string `json:"description,omitempty"`
}

// QuoteOption is one staff-curated pricing tier on an approved quote.
type QuoteOption struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CostRange string      `json:"cost_range"`
	Perks     []string    `json:"perks"`
	Items     []QuoteItem `json:"items"`
	Selected  bool        `json:"selected"`
}

// QuoteRequest is a staff-mediated sourcing-cost negotiation between one
// employer and one candidate. A pair may not hold more than one request in
// PENDING or APPROVED state at a time.
type QuoteRequest struct {
	ID               string
	EmployerID       string
	CandidateID      string
	Status           QuoteStatus
	CostEstimate     string
	Items            []QuoteItem
	Options          []QuoteOption
	SelectedOptionID *string
	RequestedAt      time.Time
	ResolvedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OptionByID returns the option with the given id, if present.
func (q *QuoteRequest) OptionByID(id string) (*QuoteOption, bool) {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i], true
		}
	}
	return nil, false
}
