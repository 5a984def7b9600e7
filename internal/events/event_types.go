package events

import "time"

// Action enumerates auditable state-changing actions.
type Action string

const (
	ActionCandidateStatusUpdated     Action = "CANDIDATE_STATUS_UPDATED"
	ActionConsentRequested           Action = "CONSENT_REQUESTED"
	ActionConsentResponded           Action = "CONSENT_RESPONDED"
	ActionQuoteRequested             Action = "QUOTE_REQUESTED"
	ActionQuoteResolved              Action = "QUOTE_RESOLVED"
	ActionQuoteOptionSelected        Action = "QUOTE_OPTION_SELECTED"
	ActionInterviewScheduled         Action = "INTERVIEW_SCHEDULED"
	ActionInterviewSlotAccepted      Action = "INTERVIEW_SLOT_ACCEPTED"
	ActionInterviewSlotRejected      Action = "INTERVIEW_SLOT_REJECTED"
	ActionInterviewCancelled         Action = "INTERVIEW_CANCELLED"
	ActionInterviewCompleted         Action = "INTERVIEW_COMPLETED"
	ActionAccountVerificationUpdated Action = "ACCOUNT_VERIFICATION_UPDATED"
	ActionDocumentVerified           Action = "DOCUMENT_VERIFIED"
)

// AllActions lists every action the audit recorder subscribes to.
var AllActions = []Action{
	ActionCandidateStatusUpdated,
	ActionConsentRequested,
	ActionConsentResponded,
	ActionQuoteRequested,
	ActionQuoteResolved,
	ActionQuoteOptionSelected,
	ActionInterviewScheduled,
	ActionInterviewSlotAccepted,
	ActionInterviewSlotRejected,
	ActionInterviewCancelled,
	ActionInterviewCompleted,
	ActionAccountVerificationUpdated,
	ActionDocumentVerified,
}

// Event represents a state-changing action emitted by the engines.
type Event struct {
	ID        string         `json:"id"`
	Action    Action         `json:"action"`
	ActorID   string         `json:"actor_id"`
	EntityID  string         `json:"entity_id"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}
