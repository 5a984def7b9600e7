package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/domain"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

func newConsentService(f *fixtures) *ConsentService {
	return NewConsentService(ConsentDependencies{
		ConsentRepo: f.consents,
		AccountRepo: f.accounts,
		Dispatcher:  f.dispatcher,
	})
}

func TestConsentCreate(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID, "  please share your details ")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusPending, request.Status)
	assert.Equal(t, "please share your details", request.Message)
	assert.Nil(t, request.RespondedAt)
}

func TestConsentCreateRejectsDuplicatePending(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), employer.ID, candidate.ID, "")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestConsentPairFreedAfterResolution(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	first, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	// rejection resolves the pending request, so a fresh one may open
	_, err = svc.Respond(context.Background(), first.ID, candidate.ID, domain.ConsentStatusRejected)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.ConsentStatusPending, second.Status)

	// approval frees the pair the same way
	_, err = svc.Respond(context.Background(), second.ID, candidate.ID, domain.ConsentStatusApproved)
	require.NoError(t, err)

	third, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusPending, third.Status)
}

func TestConsentCreateTargetMustBeCandidate(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	other := f.seedEmployer(t, "rival", true)

	_, err := svc.Create(context.Background(), employer.ID, other.ID, "")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Create(context.Background(), employer.ID, "missing", "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestConsentRespond(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), request.ID, candidate.ID, domain.ConsentStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusApproved, updated.Status)
	require.NotNil(t, updated.RespondedAt)

	// a changed mind overwrites the previous decision
	updated, err = svc.Respond(context.Background(), request.ID, candidate.ID, domain.ConsentStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentStatusRejected, updated.Status)
}

func TestConsentRespondOnlyNamedCandidate(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")
	intruder := f.seedCandidate(t, "mallory")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), request.ID, intruder.ID, domain.ConsentStatusApproved)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestConsentRespondValidatesDecision(t *testing.T) {
	f := newFixtures()
	svc := newConsentService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	request, err := svc.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), request.ID, candidate.ID, domain.ConsentStatusPending)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}
