package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/view"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

func newQuoteService(f *fixtures) *QuoteService {
	return NewQuoteService(QuoteDependencies{
		QuoteRepo:     f.quotes,
		AccountRepo:   f.accounts,
		CandidateRepo: f.candidates,
		Dispatcher:    f.dispatcher,
	})
}

func TestQuoteCreateRequiresVerifiedEmployer(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", false)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestQuoteCreateRejectsSecondActiveRequest(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusPending, request.Status)

	_, err = svc.Create(context.Background(), employer.ID, candidate.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	// approval keeps the pair occupied
	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusApproved, "$4,000")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), employer.ID, candidate.ID)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	// rejection frees it
	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusRejected, "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
}

func TestQuoteResolveApprovalAttachesOptions(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusApproved, "$4,500 - $6,000")
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	require.Len(t, resolved.Options, 2)
	assert.Equal(t, "$4,500 - $6,000", resolved.CostEstimate)
}

func TestQuoteResolveValidatesDecision(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusPending, "")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}

func TestQuoteReResolutionOverwrites(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusRejected, "")
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusApproved, "$5,000")
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusApproved, resolved.Status)
	assert.Len(t, resolved.Options, 2)
}

func TestQuoteSelectOption(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusApproved, "$4,000")
	require.NoError(t, err)

	selected, err := svc.SelectOption(context.Background(), employer.ID, request.ID, "tier-premium")
	require.NoError(t, err)
	require.NotNil(t, selected.SelectedOptionID)
	assert.Equal(t, "tier-premium", *selected.SelectedOptionID)
	for _, option := range selected.Options {
		assert.Equal(t, option.ID == "tier-premium", option.Selected)
	}

	// switching tiers overwrites, exactly one stays selected
	selected, err = svc.SelectOption(context.Background(), employer.ID, request.ID, "tier-standard")
	require.NoError(t, err)
	count := 0
	for _, option := range selected.Options {
		if option.Selected {
			count++
			assert.Equal(t, "tier-standard", option.ID)
		}
	}
	assert.Equal(t, 1, count)
}

func TestQuoteSelectOptionGuards(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	rival := f.seedEmployer(t, "rival", true)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)

	// not yet approved
	_, err = svc.SelectOption(context.Background(), employer.ID, request.ID, "tier-standard")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Resolve(context.Background(), staff.ID, request.ID, domain.QuoteStatusApproved, "")
	require.NoError(t, err)

	// owned by someone else
	_, err = svc.SelectOption(context.Background(), rival.ID, request.ID, "tier-standard")
	assert.True(t, apperrors.IsNotFound(err))

	// unknown option id
	_, err = svc.SelectOption(context.Background(), employer.ID, request.ID, "tier-gold")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}

func TestQuoteListMasksCandidateForEmployer(t *testing.T) {
	f := newFixtures()
	svc := newQuoteService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.Create(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)

	entries, err := svc.ListForEmployer(context.Background(), view.Viewer{Role: domain.RoleEmployer, SelfID: employer.ID}, employer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, view.MaskedEmail, entries[0].Candidate.Account.Email)
	assert.Empty(t, entries[0].Candidate.Profile.Phone)
	// the negotiation's own terms stay visible to the owner
	assert.Equal(t, employer.ID, entries[0].Request.EmployerID)
}
