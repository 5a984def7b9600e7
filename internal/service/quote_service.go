package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// QuoteService owns the sourcing-cost negotiation lifecycle.
type QuoteService struct {
	quotes     repository.QuoteRepository
	accounts   repository.AccountRepository
	candidates repository.CandidateRepository
	dispatcher events.Dispatcher
}

// QuoteDependencies bundles repositories for the quote service.
type QuoteDependencies struct {
	QuoteRepo     repository.QuoteRepository
	AccountRepo   repository.AccountRepository
	CandidateRepo repository.CandidateRepository
	Dispatcher    events.Dispatcher
}

// NewQuoteService constructs the service.
func NewQuoteService(deps QuoteDependencies) *QuoteService {
	return &QuoteService{
		quotes:     deps.QuoteRepo,
		accounts:   deps.AccountRepo,
		candidates: deps.CandidateRepo,
		dispatcher: deps.Dispatcher,
	}
}

// QuoteEntry joins a request with the candidate's identity for listings.
type QuoteEntry struct {
	Request   domain.QuoteRequest
	Candidate domain.Candidate
}

// Create opens a pending quote request. Only verified employers may request
// quotes, and a pair may not hold more than one PENDING or APPROVED request.
func (s *QuoteService) Create(ctx context.Context, employerID, candidateID string) (*domain.QuoteRequest, error) {
	employer, err := s.accounts.GetByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if !employer.IsVerified {
		return nil, apperrors.NewForbidden("employer account must be verified to request quotes")
	}
	if _, err := s.candidates.GetByAccountID(ctx, candidateID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("candidate", map[string]any{"candidate_id": candidateID})
		}
		return nil, err
	}

	if _, err := s.quotes.FindActiveByPair(ctx, employerID, candidateID); err == nil {
		return nil, apperrors.NewConflict("an active quote request already exists for this candidate", nil)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	request := &domain.QuoteRequest{
		EmployerID:  employerID,
		CandidateID: candidateID,
		Status:      domain.QuoteStatusPending,
		RequestedAt: time.Now(),
	}
	if err := s.quotes.Create(ctx, request); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionQuoteRequested, employerID, request.ID, map[string]any{
		"candidate_id": candidateID,
	})
	return request, nil
}

// Resolve records the staff decision. Approval attaches the two generated
// pricing tiers. Re-resolution overwrites the previous outcome.
func (s *QuoteService) Resolve(ctx context.Context, staffID, requestID string, decision domain.QuoteStatus, costEstimate string) (*domain.QuoteRequest, error) {
	if decision != domain.QuoteStatusApproved && decision != domain.QuoteStatusRejected {
		return nil, apperrors.NewBadRequest("decision must be APPROVED or REJECTED", nil)
	}
	request, err := s.quotes.GetByID(ctx, requestID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("quote request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}

	now := time.Now()
	request.Status = decision
	request.ResolvedAt = &now
	if decision == domain.QuoteStatusApproved {
		if strings.TrimSpace(costEstimate) != "" {
			request.CostEstimate = strings.TrimSpace(costEstimate)
		}
		request.Options = BuildQuoteOptions(request.CostEstimate)
	}
	if err := s.quotes.Update(ctx, request); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionQuoteResolved, staffID, request.ID, map[string]any{
		"employer_id":  request.EmployerID,
		"candidate_id": request.CandidateID,
		"decision":     decision,
	})
	return request, nil
}

// SelectOption records the employer's tier pick on an approved quote.
// Re-selection overwrites the previous pick, last write wins.
func (s *QuoteService) SelectOption(ctx context.Context, employerID, requestID, optionID string) (*domain.QuoteRequest, error) {
	request, err := s.quotes.GetByID(ctx, requestID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("quote request", map[string]any{"request_id": requestID})
		}
		return nil, err
	}
	if request.EmployerID != employerID || request.Status != domain.QuoteStatusApproved || len(request.Options) == 0 {
		return nil, apperrors.NewNotFound("approved quote request", map[string]any{"request_id": requestID})
	}
	if _, ok := request.OptionByID(optionID); !ok {
		return nil, apperrors.NewBadRequest("unknown option id", map[string]any{"option_id": optionID})
	}

	for i := range request.Options {
		request.Options[i].Selected = request.Options[i].ID == optionID
	}
	request.SelectedOptionID = &optionID
	if err := s.quotes.Update(ctx, request); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionQuoteOptionSelected, employerID, request.ID, map[string]any{
		"option_id": optionID,
	})
	return request, nil
}

// ListForEmployer returns the employer's requests with candidates masked
// through the viewer's projection. Owning a request exposes the negotiation's
// existence and cost terms, never the candidate's raw profile fields.
func (s *QuoteService) ListForEmployer(ctx context.Context, viewer view.Viewer, employerID string) ([]QuoteEntry, error) {
	requests, err := s.quotes.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	return s.joinCandidates(ctx, viewer, requests)
}

// ListAll returns every request for staff viewers.
func (s *QuoteService) ListAll(ctx context.Context, viewer view.Viewer, limit, offset int) ([]QuoteEntry, error) {
	requests, err := s.quotes.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.joinCandidates(ctx, viewer, requests)
}

func (s *QuoteService) joinCandidates(ctx context.Context, viewer view.Viewer, requests []domain.QuoteRequest) ([]QuoteEntry, error) {
	entries := make([]QuoteEntry, 0, len(requests))
	for _, request := range requests {
		candidate, err := s.candidates.GetByAccountID(ctx, request.CandidateID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		entries = append(entries, QuoteEntry{
			Request:   request,
			Candidate: view.ProjectCandidate(viewer, *candidate),
		})
	}
	return entries, nil
}
