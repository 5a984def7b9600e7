package service

import (
	"context"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/repository"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// PoolService serves talent-pool reads and the candidate-self exposure view.
type PoolService struct {
	candidates repository.CandidateRepository
	consents   repository.ConsentRepository
	documents  repository.DocumentRepository
	views      repository.ViewCounter
}

// PoolDependencies bundles repositories for the pool service.
type PoolDependencies struct {
	CandidateRepo repository.CandidateRepository
	ConsentRepo   repository.ConsentRepository
	DocumentRepo  repository.DocumentRepository
	ViewCounter   repository.ViewCounter
}

// NewPoolService constructs the service.
func NewPoolService(deps PoolDependencies) *PoolService {
	return &PoolService{
		candidates: deps.CandidateRepo,
		consents:   deps.ConsentRepo,
		documents:  deps.DocumentRepo,
		views:      deps.ViewCounter,
	}
}

// ListCandidates returns pool candidates filtered by an optional skill
// substring, projected for the viewer.
func (s *PoolService) ListCandidates(ctx context.Context, viewer view.Viewer, skill *string, limit, offset int) ([]domain.Candidate, error) {
	candidates, err := s.candidates.List(ctx, repository.CandidateFilter{
		Skill:  skill,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return view.ProjectCandidates(viewer, candidates), nil
}

// GetCandidate returns one candidate projected for the viewer. Employer
// views count toward the candidate's exposure.
func (s *PoolService) GetCandidate(ctx context.Context, viewer view.Viewer, candidateID string) (*domain.Candidate, error) {
	candidate, err := s.candidates.GetByAccountID(ctx, candidateID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, err
	}
	if viewer.Role == domain.RoleEmployer && s.views != nil {
		// best effort; a lost counter increment is acceptable
		_ = s.views.Increment(ctx, candidateID)
	}
	projected := view.ProjectCandidate(viewer, *candidate)
	return &projected, nil
}

// UpdateProfile upserts the candidate's own profile.
func (s *PoolService) UpdateProfile(ctx context.Context, candidateID string, profile domain.CandidateProfile) (*domain.CandidateProfile, error) {
	profile.AccountID = candidateID
	if err := s.candidates.UpsertProfile(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Exposure summarizes what the marketplace currently reveals about a
// candidate: profile views, verification state, open consents, documents.
type Exposure struct {
	ProfileViews       int64
	VerificationStatus domain.VerificationStatus
	IsVerified         bool
	PendingConsents    int
	DocumentsTotal     int
	DocumentsVerified  int
}

// GetExposure builds the candidate-self exposure summary.
func (s *PoolService) GetExposure(ctx context.Context, candidateID string) (*Exposure, error) {
	candidate, err := s.candidates.GetByAccountID(ctx, candidateID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, err
	}

	exposure := &Exposure{
		VerificationStatus: candidate.Account.VerificationStatus,
		IsVerified:         candidate.Account.IsVerified,
	}
	if s.views != nil {
		count, err := s.views.Get(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		exposure.ProfileViews = count
	}

	consents, err := s.consents.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	for _, consent := range consents {
		if consent.Status == domain.ConsentStatusPending {
			exposure.PendingConsents++
		}
	}

	documents, err := s.documents.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	exposure.DocumentsTotal = len(documents)
	for _, doc := range documents {
		if doc.Verified {
			exposure.DocumentsVerified++
		}
	}
	return exposure, nil
}
