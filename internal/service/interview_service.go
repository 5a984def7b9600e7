package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// PipelineTracker is the narrow dependency the scheduler holds on the
// pipeline engine: completion forces the relation to INTERVIEWED.
type PipelineTracker interface {
	ForceInterviewed(ctx context.Context, actorID, employerID, candidateID string) error
}

// InterviewService owns the interview proposal/acceptance/completion
// lifecycle.
type InterviewService struct {
	interviews repository.InterviewRepository
	candidates repository.CandidateRepository
	accounts   repository.AccountRepository
	pipeline   PipelineTracker
	dispatcher events.Dispatcher
}

// InterviewDependencies bundles repositories for the interview service.
type InterviewDependencies struct {
	InterviewRepo repository.InterviewRepository
	CandidateRepo repository.CandidateRepository
	AccountRepo   repository.AccountRepository
	Pipeline      PipelineTracker
	Dispatcher    events.Dispatcher
}

// NewInterviewService constructs the service.
func NewInterviewService(deps InterviewDependencies) *InterviewService {
	return &InterviewService{
		interviews: deps.InterviewRepo,
		candidates: deps.CandidateRepo,
		accounts:   deps.AccountRepo,
		pipeline:   deps.Pipeline,
		dispatcher: deps.Dispatcher,
	}
}

// SlotInput describes one proposed time in a scheduling request.
type SlotInput struct {
	DateTime    time.Time
	DurationMin int
}

// ScheduleInput describes an interview scheduling request.
type ScheduleInput struct {
	EmployerID    string
	CandidateID   string
	Title         string
	ProposedTimes []SlotInput
	Notes         string
}

// Schedule creates a pending interview with at least one proposed slot. A
// meeting room id is generated for every interview regardless of eventual
// confirmation.
func (s *InterviewService) Schedule(ctx context.Context, scheduledBy string, input ScheduleInput) (*domain.InterviewMeeting, error) {
	if len(input.ProposedTimes) < 1 {
		return nil, apperrors.NewBadRequest("at least one proposed time is required", nil)
	}
	if _, err := s.candidates.GetByAccountID(ctx, input.CandidateID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": input.CandidateID})
		}
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(input.ProposedTimes))
	for _, proposed := range input.ProposedTimes {
		slots = append(slots, domain.Slot{
			ID:          uuid.NewString(),
			DateTime:    proposed.DateTime,
			DurationMin: proposed.DurationMin,
			ProposedBy:  scheduledBy,
			Accepted:    false,
		})
	}

	meeting := &domain.InterviewMeeting{
		EmployerID:    input.EmployerID,
		CandidateID:   input.CandidateID,
		ScheduledBy:   scheduledBy,
		Title:         strings.TrimSpace(input.Title),
		ProposedTimes: slots,
		Status:        domain.InterviewStatusPending,
		MeetingRoomID: generateMeetingRoomID(),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := s.interviews.Create(ctx, meeting); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionInterviewScheduled, scheduledBy, meeting.ID, map[string]any{
		"employer_id":  meeting.EmployerID,
		"candidate_id": meeting.CandidateID,
		"slots":        len(meeting.ProposedTimes),
	})
	return meeting, nil
}

// RespondToSlot updates one slot's accepted flag and recomputes confirmation
// across all slots. The first accepted slot found determines the confirmed
// time; more than one accepted slot should not happen.
func (s *InterviewService) RespondToSlot(ctx context.Context, actorID, interviewID, slotID string, accepted bool) (*domain.InterviewMeeting, error) {
	meeting, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("interview", map[string]any{"interview_id": interviewID})
		}
		return nil, err
	}
	if meeting.Status.Terminal() {
		return nil, apperrors.NewConflict("interview is in a terminal state", map[string]any{"status": meeting.Status})
	}
	slot, ok := meeting.SlotByID(slotID)
	if !ok {
		return nil, apperrors.NewBadRequest("unknown slot id", map[string]any{"slot_id": slotID})
	}

	slot.Accepted = accepted
	if acceptedSlot, found := meeting.AcceptedSlot(); found {
		confirmed := acceptedSlot.DateTime
		meeting.Status = domain.InterviewStatusConfirmed
		meeting.ConfirmedTime = &confirmed
	} else {
		meeting.Status = domain.InterviewStatusPending
		meeting.ConfirmedTime = nil
	}
	if err := s.interviews.Update(ctx, meeting); err != nil {
		return nil, err
	}

	action := events.ActionInterviewSlotRejected
	if accepted {
		action = events.ActionInterviewSlotAccepted
	}
	publishEvent(ctx, s.dispatcher, action, actorID, meeting.ID, map[string]any{
		"slot_id": slotID,
		"status":  meeting.Status,
	})
	return meeting, nil
}

// Cancel marks the interview cancelled. Only staff, admin, or one of the two
// named parties may cancel, and terminal states reject the transition.
func (s *InterviewService) Cancel(ctx context.Context, actorID string, actorRole domain.Role, interviewID string) (*domain.InterviewMeeting, error) {
	meeting, err := s.authorizeTransition(ctx, actorID, actorRole, interviewID)
	if err != nil {
		return nil, err
	}

	meeting.Status = domain.InterviewStatusCancelled
	if err := s.interviews.Update(ctx, meeting); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionInterviewCancelled, actorID, meeting.ID, nil)
	return meeting, nil
}

// Complete marks the interview completed and forces the paired pipeline
// relation to INTERVIEWED.
func (s *InterviewService) Complete(ctx context.Context, actorID string, actorRole domain.Role, interviewID string) (*domain.InterviewMeeting, error) {
	meeting, err := s.authorizeTransition(ctx, actorID, actorRole, interviewID)
	if err != nil {
		return nil, err
	}

	meeting.Status = domain.InterviewStatusCompleted
	if err := s.interviews.Update(ctx, meeting); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionInterviewCompleted, actorID, meeting.ID, map[string]any{
		"employer_id":  meeting.EmployerID,
		"candidate_id": meeting.CandidateID,
	})
	if s.pipeline != nil {
		if err := s.pipeline.ForceInterviewed(ctx, actorID, meeting.EmployerID, meeting.CandidateID); err != nil {
			return nil, err
		}
	}
	return meeting, nil
}

// GetOne returns the interview projection for a party or staff viewer.
func (s *InterviewService) GetOne(ctx context.Context, viewer view.Viewer, interviewID string) (*view.InterviewView, error) {
	meeting, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("interview", map[string]any{"interview_id": interviewID})
		}
		return nil, err
	}
	if !viewer.Role.IsStaff() && !meeting.IsParty(viewer.SelfID) {
		return nil, apperrors.NewForbidden("not a party to this interview")
	}
	projected, err := s.project(ctx, viewer, *meeting)
	if err != nil {
		return nil, err
	}
	return &projected, nil
}

// ListMine returns interviews where the viewer is a party.
func (s *InterviewService) ListMine(ctx context.Context, viewer view.Viewer) ([]view.InterviewView, error) {
	meetings, err := s.interviews.ListByParty(ctx, viewer.SelfID)
	if err != nil {
		return nil, err
	}
	return s.projectAll(ctx, viewer, meetings)
}

// ListAll returns every interview for staff viewers.
func (s *InterviewService) ListAll(ctx context.Context, viewer view.Viewer, limit, offset int) ([]view.InterviewView, error) {
	meetings, err := s.interviews.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.projectAll(ctx, viewer, meetings)
}

func (s *InterviewService) authorizeTransition(ctx context.Context, actorID string, actorRole domain.Role, interviewID string) (*domain.InterviewMeeting, error) {
	meeting, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("interview", map[string]any{"interview_id": interviewID})
		}
		return nil, err
	}
	if !actorRole.IsStaff() && !meeting.IsParty(actorID) {
		return nil, apperrors.NewForbidden("not a party to this interview")
	}
	if meeting.Status.Terminal() {
		return nil, apperrors.NewConflict("interview is in a terminal state", map[string]any{"status": meeting.Status})
	}
	return meeting, nil
}

func (s *InterviewService) project(ctx context.Context, viewer view.Viewer, meeting domain.InterviewMeeting) (view.InterviewView, error) {
	candidate, err := s.candidates.GetByAccountID(ctx, meeting.CandidateID)
	if err != nil && !apperrors.IsNotFound(err) {
		return view.InterviewView{}, err
	}
	if candidate == nil {
		candidate = &domain.Candidate{}
	}
	employer, err := s.accounts.GetByID(ctx, meeting.EmployerID)
	if err != nil && !apperrors.IsNotFound(err) {
		return view.InterviewView{}, err
	}
	if employer == nil {
		employer = &domain.Account{}
	}
	return view.ProjectInterview(viewer, meeting, *candidate, *employer), nil
}

func (s *InterviewService) projectAll(ctx context.Context, viewer view.Viewer, meetings []domain.InterviewMeeting) ([]view.InterviewView, error) {
	result := make([]view.InterviewView, 0, len(meetings))
	for _, meeting := range meetings {
		projected, err := s.project(ctx, viewer, meeting)
		if err != nil {
			return nil, err
		}
		result = append(result, projected)
	}
	return result, nil
}

// generateMeetingRoomID builds an unguessable room key: a time-based prefix
// plus a random suffix.
func generateMeetingRoomID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return "room-" + time.Now().UTC().Format("20060102150405") + "-" + suffix
}
