package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// SlotRequest is one proposed time in a scheduling payload.
type SlotRequest struct {
	DateTime    time.Time `json:"datetime"`
	DurationMin int       `json:"duration_min"`
}

// ScheduleInterviewRequest payload for creating an interview. EmployerID is
// honored only for staff callers scheduling on an employer's behalf.
type ScheduleInterviewRequest struct {
	CandidateID   string        `json:"candidate_id"`
	EmployerID    string        `json:"employer_id,omitempty"`
	Title         string        `json:"title"`
	Notes         string        `json:"notes"`
	ProposedTimes []SlotRequest `json:"proposed_times"`
}

// SlotDecisionRequest payload for accepting or rejecting one slot.
type SlotDecisionRequest struct {
	Accepted bool `json:"accepted"`
}

// InterviewResponse is the read shape of an interview with the derived
// display fields attached.
type InterviewResponse struct {
	ID                 string                 `json:"id"`
	EmployerID         string                 `json:"employer_id"`
	CandidateID        string                 `json:"candidate_id"`
	ScheduledBy        string                 `json:"scheduled_by"`
	Title              string                 `json:"title"`
	ProposedTimes      []domain.Slot          `json:"proposed_times"`
	ConfirmedTime      *time.Time             `json:"confirmed_time,omitempty"`
	Status             domain.InterviewStatus `json:"status"`
	MeetingRoomID      string                 `json:"meeting_room_id"`
	Notes              string                 `json:"notes,omitempty"`
	CandidateName      string                 `json:"candidate_name"`
	EmployerName       string                 `json:"employer_name"`
	CandidateAvatarURL string                 `json:"candidate_avatar_url,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}
