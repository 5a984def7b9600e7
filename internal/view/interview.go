package view

import "github.com/spec-kit/talent-bridge/internal/domain"

// InterviewView is the read projection of an interview meeting with the
// view-dependent derived fields attached. This masking is narrower than full
// candidate anonymization: the payload carries only display names and,
// for non-employer viewers, the candidate's avatar reference.
type InterviewView struct {
	Meeting            domain.InterviewMeeting
	CandidateName      string
	EmployerName       string
	CandidateAvatarURL string
}

// ProjectInterview derives the interview read model for the given viewer.
// Employer viewers do not receive the candidate's avatar reference.
func ProjectInterview(viewer Viewer, meeting domain.InterviewMeeting, candidate domain.Candidate, employer domain.Account) InterviewView {
	projected := InterviewView{
		Meeting:            meeting,
		CandidateName:      DisplayName(candidate.Profile.FirstName, candidate.Profile.LastName),
		EmployerName:       employer.Name,
		CandidateAvatarURL: candidate.Profile.AvatarURL,
	}
	if viewer.Role == domain.RoleEmployer {
		projected.CandidateAvatarURL = ""
	}
	return projected
}
