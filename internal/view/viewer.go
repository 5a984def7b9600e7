// Package view centralizes role-based projection of candidate data. Read
// paths hand a Viewer to the projection functions here instead of branching
// on roles inline.
package view

import "github.com/spec-kit/talent-bridge/internal/domain"

// Viewer is the capability of the reading actor: who they are and what role
// they hold. SelfID allows candidate-self reads to bypass masking.
type Viewer struct {
	Role   domain.Role
	SelfID string
}

// CandidateProjection maps a candidate record to what a viewer may see.
type CandidateProjection func(domain.Candidate) domain.Candidate

// candidateProjections maps role to projection. Only employers get masked
// data; candidate-self, staff, and admin read raw records.
var candidateProjections = map[domain.Role]CandidateProjection{
	domain.RoleCandidate: rawCandidate,
	domain.RoleEmployer:  AnonymizeCandidate,
	domain.RoleStaff:     rawCandidate,
	domain.RoleAdmin:     rawCandidate,
}

// ProjectCandidate applies the viewer's projection to one candidate.
func ProjectCandidate(viewer Viewer, candidate domain.Candidate) domain.Candidate {
	if viewer.Role == domain.RoleCandidate && viewer.SelfID == candidate.Account.ID {
		return rawCandidate(candidate)
	}
	projection, ok := candidateProjections[viewer.Role]
	if !ok {
		// unknown roles get the most restrictive view
		projection = AnonymizeCandidate
	}
	return projection(candidate)
}

// ProjectCandidates applies the viewer's projection to a list.
func ProjectCandidates(viewer Viewer, candidates []domain.Candidate) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, ProjectCandidate(viewer, candidate))
	}
	return result
}

func rawCandidate(candidate domain.Candidate) domain.Candidate {
	// the password hash never leaves the service regardless of viewer
	candidate.Account.PasswordHash = ""
	return candidate
}
