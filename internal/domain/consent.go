package domain

import "time"

// ConsentStatus enumerates consent-request lifecycle states.
type ConsentStatus string

const (
	ConsentStatusPending  ConsentStatus = "PENDING"
	ConsentStatusApproved ConsentStatus = "APPROVED"
	ConsentStatusRejected ConsentStatus = "REJECTED"
)

// ConsentRequest is an employer's request for a candidate's consent to
// expanded visibility. Only the named candidate may respond. At most one
// pending request may exist per (employer, candidate) pair.
type ConsentRequest struct {
	ID          string
	EmployerID  string
	CandidateID string
	Status      ConsentStatus
	Message     string
	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
