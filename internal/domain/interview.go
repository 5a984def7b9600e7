package domain

import "time"

// InterviewStatus enumerates interview lifecycle states. COMPLETED and
// CANCELLED are terminal.
type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "PENDING"
	InterviewStatusConfirmed InterviewStatus = "CONFIRMED"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
	InterviewStatusCancelled InterviewStatus = "CANCELLED"
)

// Terminal reports whether no further transition is defined from s.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

// Slot is one proposed date/time option on an interview.
type Slot struct {
	ID          string    `json:"id"`
	DateTime    time.Time `json:"datetime"`
	DurationMin int       `json:"duration_min"`
	ProposedBy  string    `json:"proposed_by"`
	Accepted    bool      `json:"accepted"`
}

// InterviewMeeting is a scheduled interview between one employer and one
// candidate, with any number (>=1) of proposed slots. Accepting a slot
// confirms the meeting at that slot's time.
type InterviewMeeting struct {
	ID            string
	EmployerID    string
	CandidateID   string
	ScheduledBy   string
	Title         string
	ProposedTimes []Slot
	ConfirmedTime *time.Time
	Status        InterviewStatus
	MeetingRoomID string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SlotByID returns the proposed slot with the given id, if present.
func (m *InterviewMeeting) SlotByID(id string) (*Slot, bool) {
	for i := range m.ProposedTimes {
		if m.ProposedTimes[i].ID == id {
			return &m.ProposedTimes[i], true
		}
	}
	return nil, false
}

// AcceptedSlot returns the first accepted slot, if any. Multiple accepted
// slots should not happen; first found wins.
func (m *InterviewMeeting) AcceptedSlot() (*Slot, bool) {
	for i := range m.ProposedTimes {
		if m.ProposedTimes[i].Accepted {
			return &m.ProposedTimes[i], true
		}
	}
	return nil, false
}

// IsParty reports whether the account is one of the two named parties.
func (m *InterviewMeeting) IsParty(accountID string) bool {
	return m.EmployerID == accountID || m.CandidateID == accountID
}
