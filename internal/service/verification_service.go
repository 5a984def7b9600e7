package service

import (
	"context"
	"strings"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// VerificationService handles staff-mediated identity and document
// verification.
type VerificationService struct {
	accounts   repository.AccountRepository
	documents  repository.DocumentRepository
	dispatcher events.Dispatcher
}

// VerificationDependencies bundles repositories for the verification service.
type VerificationDependencies struct {
	AccountRepo  repository.AccountRepository
	DocumentRepo repository.DocumentRepository
	Dispatcher   events.Dispatcher
}

// NewVerificationService constructs the service.
func NewVerificationService(deps VerificationDependencies) *VerificationService {
	return &VerificationService{
		accounts:   deps.AccountRepo,
		documents:  deps.DocumentRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SetAccountVerification updates an account's verification status. VERIFIED
// also raises the is_verified flag gating quote creation; any other status
// clears it.
func (s *VerificationService) SetAccountVerification(ctx context.Context, staffID, accountID string, status domain.VerificationStatus) (*domain.Account, error) {
	switch status {
	case domain.VerificationUnverified, domain.VerificationPending,
		domain.VerificationVerified, domain.VerificationRejected:
	default:
		return nil, apperrors.NewBadRequest("unknown verification status", map[string]any{"status": status})
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("account", map[string]any{"account_id": accountID})
		}
		return nil, err
	}

	account.VerificationStatus = status
	account.IsVerified = status == domain.VerificationVerified
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionAccountVerificationUpdated, staffID, account.ID, map[string]any{
		"status": status,
	})
	return account, nil
}

// AddDocument stores a pointer to an uploaded candidate document.
func (s *VerificationService) AddDocument(ctx context.Context, candidateID string, kind domain.DocumentKind, storageURL string) (*domain.Document, error) {
	if strings.TrimSpace(storageURL) == "" {
		return nil, apperrors.NewBadRequest("storage_url required", nil)
	}
	if kind == "" {
		kind = domain.DocumentKindOther
	}
	doc := &domain.Document{
		CandidateID: candidateID,
		Kind:        kind,
		StorageURL:  strings.TrimSpace(storageURL),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// VerifyDocument marks a candidate document as verified by staff.
func (s *VerificationService) VerifyDocument(ctx context.Context, staffID, documentID string) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("document", map[string]any{"document_id": documentID})
		}
		return nil, err
	}

	doc.Verified = true
	doc.VerifiedBy = &staffID
	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	publishEvent(ctx, s.dispatcher, events.ActionDocumentVerified, staffID, doc.ID, map[string]any{
		"candidate_id": doc.CandidateID,
	})
	return doc, nil
}

// ListDocuments returns a candidate's document pointers.
func (s *VerificationService) ListDocuments(ctx context.Context, candidateID string) ([]domain.Document, error) {
	return s.documents.ListByCandidate(ctx, candidateID)
}
