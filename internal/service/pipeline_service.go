package service

import (
	"context"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// PipelineService owns the employer-candidate funnel stage machine.
type PipelineService struct {
	relations  repository.PipelineRepository
	candidates repository.CandidateRepository
	dispatcher events.Dispatcher
}

// PipelineDependencies bundles repositories for the pipeline service.
type PipelineDependencies struct {
	PipelineRepo  repository.PipelineRepository
	CandidateRepo repository.CandidateRepository
	Dispatcher    events.Dispatcher
}

// NewPipelineService constructs the service.
func NewPipelineService(deps PipelineDependencies) *PipelineService {
	return &PipelineService{
		relations:  deps.PipelineRepo,
		candidates: deps.CandidateRepo,
		dispatcher: deps.Dispatcher,
	}
}

// PipelineEntry joins a relation with the candidate's identity for listings.
type PipelineEntry struct {
	Relation  domain.PipelineRelation
	Candidate domain.Candidate
}

// UpsertStatus creates the relation if absent, else overwrites its status.
// Transitions are intentionally unrestricted so employers and staff can
// correct the funnel manually.
func (s *PipelineService) UpsertStatus(ctx context.Context, actorID, employerID, candidateID string, status domain.PipelineStatus) (*domain.PipelineRelation, error) {
	if !domain.ValidPipelineStatus(status) {
		return nil, apperrors.NewBadRequest("unknown pipeline status", map[string]any{"status": status})
	}
	if _, err := s.candidates.GetByAccountID(ctx, candidateID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, err
	}

	relation := &domain.PipelineRelation{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      status,
	}
	if err := s.relations.Upsert(ctx, relation); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionCandidateStatusUpdated, actorID, relation.ID, map[string]any{
		"employer_id":  employerID,
		"candidate_id": candidateID,
		"status":       relation.Status,
	})
	return relation, nil
}

// ForceInterviewed pins the relation to INTERVIEWED, creating it if absent.
// Called by the interview scheduler on completion. The overwrite is
// unconditional, even from HIRED.
func (s *PipelineService) ForceInterviewed(ctx context.Context, actorID, employerID, candidateID string) error {
	relation := &domain.PipelineRelation{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      domain.PipelineStatusInterviewed,
	}
	if err := s.relations.Upsert(ctx, relation); err != nil {
		return err
	}
	publishEvent(ctx, s.dispatcher, events.ActionCandidateStatusUpdated, actorID, relation.ID, map[string]any{
		"employer_id":  employerID,
		"candidate_id": candidateID,
		"status":       relation.Status,
		"source":       "interview_completed",
	})
	return nil
}

// ListForEmployer returns the employer's relations joined with candidate
// identity, masked through the viewer's projection.
func (s *PipelineService) ListForEmployer(ctx context.Context, viewer view.Viewer, employerID string) ([]PipelineEntry, error) {
	relations, err := s.relations.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	return s.joinCandidates(ctx, viewer, relations)
}

// ListAll returns every relation for staff viewers.
func (s *PipelineService) ListAll(ctx context.Context, viewer view.Viewer, limit, offset int) ([]PipelineEntry, error) {
	relations, err := s.relations.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.joinCandidates(ctx, viewer, relations)
}

func (s *PipelineService) joinCandidates(ctx context.Context, viewer view.Viewer, relations []domain.PipelineRelation) ([]PipelineEntry, error) {
	entries := make([]PipelineEntry, 0, len(relations))
	for _, relation := range relations {
		candidate, err := s.candidates.GetByAccountID(ctx, relation.CandidateID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		entries = append(entries, PipelineEntry{
			Relation:  relation,
			Candidate: view.ProjectCandidate(viewer, *candidate),
		})
	}
	return entries, nil
}
