package domain

import "time"

// PipelineStatus enumerates hiring-funnel stages between an employer and a
// candidate. Any stage is reachable from any stage by explicit request so that
// employers and staff can correct the funnel manually.
type PipelineStatus string

const (
	PipelineStatusPotential   PipelineStatus = "POTENTIAL"
	PipelineStatusShortlisted PipelineStatus = "SHORTLISTED"
	PipelineStatusAskedQuote  PipelineStatus = "ASKED_QUOTE"
	PipelineStatusInterviewed PipelineStatus = "INTERVIEWED"
	PipelineStatusHired       PipelineStatus = "HIRED"
)

// ValidPipelineStatus reports whether s is a known stage.
func ValidPipelineStatus(s PipelineStatus) bool {
	switch s {
	case PipelineStatusPotential, PipelineStatusShortlisted, PipelineStatusAskedQuote,
		PipelineStatusInterviewed, PipelineStatusHired:
		return true
	}
	return false
}

// PipelineRelation tracks one employer's funnel stage for one candidate.
// At most one relation exists per (employer, candidate) pair; writes upsert.
type PipelineRelation struct {
	ID          string
	EmployerID  string
	CandidateID string
	Status      PipelineStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
