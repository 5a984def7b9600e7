package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

func newInterviewService(f *fixtures) *InterviewService {
	return NewInterviewService(InterviewDependencies{
		InterviewRepo: f.interviews,
		CandidateRepo: f.candidates,
		AccountRepo:   f.accounts,
		Pipeline:      newPipelineService(f),
		Dispatcher:    f.dispatcher,
	})
}

func scheduleInput(employerID, candidateID string, slots int) ScheduleInput {
	input := ScheduleInput{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Title:       "Backend interview",
	}
	for i := 0; i < slots; i++ {
		input.ProposedTimes = append(input.ProposedTimes, SlotInput{
			DateTime:    time.Now().Add(time.Duration(24+i) * time.Hour),
			DurationMin: 60,
		})
	}
	return input
}

func TestScheduleRequiresSlots(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 0))
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}

func TestScheduleGeneratesRoomAndSlotIDs(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 3))
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStatusPending, meeting.Status)
	assert.True(t, strings.HasPrefix(meeting.MeetingRoomID, "room-"))
	require.Len(t, meeting.ProposedTimes, 3)
	seen := map[string]bool{}
	for _, slot := range meeting.ProposedTimes {
		assert.NotEmpty(t, slot.ID)
		assert.False(t, slot.Accepted)
		assert.Equal(t, employer.ID, slot.ProposedBy)
		assert.False(t, seen[slot.ID])
		seen[slot.ID] = true
	}
}

func TestRespondToSlotConfirmsAndReverts(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 2))
	require.NoError(t, err)
	slotID := meeting.ProposedTimes[0].ID

	confirmed, err := svc.RespondToSlot(context.Background(), candidate.ID, meeting.ID, slotID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedTime)
	assert.Equal(t, meeting.ProposedTimes[0].DateTime.Unix(), confirmed.ConfirmedTime.Unix())

	// withdrawing the acceptance reverts to pending
	reverted, err := svc.RespondToSlot(context.Background(), candidate.ID, meeting.ID, slotID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStatusPending, reverted.Status)
	assert.Nil(t, reverted.ConfirmedTime)
}

func TestRespondToSlotUnknownSlot(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)

	_, err = svc.RespondToSlot(context.Background(), candidate.ID, meeting.ID, "nope", true)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}

func TestCompleteForcesPipelineInterviewed(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	// relation already advanced to HIRED; completion still pins it back
	pipeline := newPipelineService(f)
	_, err := pipeline.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusHired)
	require.NoError(t, err)

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)

	completed, err := svc.Complete(context.Background(), employer.ID, domain.RoleEmployer, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStatusCompleted, completed.Status)

	relation, err := f.pipelines.GetByPair(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusInterviewed, relation.Status)
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)
	_, err = svc.Cancel(context.Background(), employer.ID, domain.RoleEmployer, meeting.ID)
	require.NoError(t, err)

	var domainErr *apperrors.DomainError

	_, err = svc.Complete(context.Background(), employer.ID, domain.RoleEmployer, meeting.ID)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	_, err = svc.RespondToSlot(context.Background(), candidate.ID, meeting.ID, meeting.ProposedTimes[0].ID, true)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestCancelCompletedInterviewRejected(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), employer.ID, domain.RoleEmployer, meeting.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), employer.ID, domain.RoleEmployer, meeting.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	stored, err := f.interviews.GetByID(context.Background(), meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewStatusCompleted, stored.Status)
}

func TestTransitionsRequirePartyOrStaff(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	outsider := f.seedEmployer(t, "rival", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), outsider.ID, domain.RoleEmployer, meeting.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)

	_, err = svc.Cancel(context.Background(), staff.ID, domain.RoleStaff, meeting.ID)
	require.NoError(t, err)
}

func TestInterviewProjectionSuppressesAvatarForEmployer(t *testing.T) {
	f := newFixtures()
	svc := newInterviewService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	profile := domain.CandidateProfile{
		AccountID: candidate.ID,
		FirstName: "Alice",
		LastName:  "Jones",
		AvatarURL: "https://cdn.example.com/alice.png",
	}
	require.NoError(t, f.candidates.UpsertProfile(context.Background(), &profile))

	meeting, err := svc.Schedule(context.Background(), employer.ID, scheduleInput(employer.ID, candidate.ID, 1))
	require.NoError(t, err)

	employerView, err := svc.GetOne(context.Background(), view.Viewer{Role: domain.RoleEmployer, SelfID: employer.ID}, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Jones", employerView.CandidateName)
	assert.Empty(t, employerView.CandidateAvatarURL)

	candidateView, err := svc.GetOne(context.Background(), view.Viewer{Role: domain.RoleCandidate, SelfID: candidate.ID}, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/alice.png", candidateView.CandidateAvatarURL)

	_, err = svc.GetOne(context.Background(), view.Viewer{Role: domain.RoleEmployer, SelfID: "outsider"}, meeting.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}
