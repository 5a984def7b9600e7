package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// ConsentService owns the employer-to-candidate consent request lifecycle.
type ConsentService struct {
	consents   repository.ConsentRepository
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
}

// ConsentDependencies bundles repositories for the consent service.
type ConsentDependencies struct {
	ConsentRepo repository.ConsentRepository
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewConsentService constructs the service.
func NewConsentService(deps ConsentDependencies) *ConsentService {
	return &ConsentService{
		consents:   deps.ConsentRepo,
		accounts:   deps.AccountRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create opens a pending consent request. At most one pending request may
// exist per (employer, candidate) pair; the partial unique index backs this
// check against concurrent creators.
func (s *ConsentService) Create(ctx context.Context, employerID, candidateID, message string) (*domain.ConsentRequest, error) {
	target, err := s.accounts.GetByID(ctx, candidateID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, err
	}
	if target.Role != domain.RoleCandidate {
		return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
	}

	if _, err := s.consents.FindPendingByPair(ctx, employerID, candidateID); err == nil {
		return nil, apperrors.NewConflict("a pending consent request already exists for this candidate", nil)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	request := &domain.ConsentRequest{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      domain.ConsentStatusPending,
		Message:     strings.TrimSpace(message),
	}
	if err := s.consents.Create(ctx, request); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionConsentRequested, employerID, request.ID, map[string]any{
		"candidate_id": candidateID,
	})
	return request, nil
}

// Respond records the candidate's decision. Only the named candidate may
// respond. Responding again overwrites the previous decision.
func (s *ConsentService) Respond(ctx context.Context, requestID, candidateID string, decision domain.ConsentStatus) (*domain.ConsentRequest, error) {
	if decision != domain.ConsentStatusApproved && decision != domain.ConsentStatusRejected {
		return nil, apperrors.NewBadRequest("decision must be APPROVED or REJECTED", nil)
	}
	request, err := s.consents.GetByID(ctx, requestID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("consent request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}
	if request.CandidateID != candidateID {
		return nil, apperrors.NewForbidden("only the named candidate may respond")
	}

	now := time.Now()
	request.Status = decision
	request.RespondedAt = &now
	if err := s.consents.Update(ctx, request); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionConsentResponded, candidateID, request.ID, map[string]any{
		"employer_id": request.EmployerID,
		"decision":    decision,
	})
	return request, nil
}

// ListForCandidate returns the candidate's incoming requests, newest first.
func (s *ConsentService) ListForCandidate(ctx context.Context, candidateID string) ([]domain.ConsentRequest, error) {
	return s.consents.ListByCandidate(ctx, candidateID)
}

// ListForEmployer returns the employer's outgoing requests, newest first.
func (s *ConsentService) ListForEmployer(ctx context.Context, employerID string) ([]domain.ConsentRequest, error) {
	return s.consents.ListByEmployer(ctx, employerID)
}
