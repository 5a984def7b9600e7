package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/domain"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

func newVerificationService(f *fixtures) *VerificationService {
	return NewVerificationService(VerificationDependencies{
		AccountRepo:  f.accounts,
		DocumentRepo: f.documents,
		Dispatcher:   f.dispatcher,
	})
}

func TestSetAccountVerification(t *testing.T) {
	f := newFixtures()
	svc := newVerificationService(f)
	staff := f.seedStaff(t, "op")
	employer := f.seedEmployer(t, "acme", false)

	account, err := svc.SetAccountVerification(context.Background(), staff.ID, employer.ID, domain.VerificationVerified)
	require.NoError(t, err)
	assert.True(t, account.IsVerified)
	assert.Equal(t, domain.VerificationVerified, account.VerificationStatus)

	// demoting clears the gate flag
	account, err = svc.SetAccountVerification(context.Background(), staff.ID, employer.ID, domain.VerificationRejected)
	require.NoError(t, err)
	assert.False(t, account.IsVerified)
}

func TestSetAccountVerificationValidatesStatus(t *testing.T) {
	f := newFixtures()
	svc := newVerificationService(f)
	staff := f.seedStaff(t, "op")
	employer := f.seedEmployer(t, "acme", false)

	_, err := svc.SetAccountVerification(context.Background(), staff.ID, employer.ID, "MAYBE")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)

	_, err = svc.SetAccountVerification(context.Background(), staff.ID, "ghost", domain.VerificationVerified)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestVerifyDocument(t *testing.T) {
	f := newFixtures()
	svc := newVerificationService(f)
	staff := f.seedStaff(t, "op")
	candidate := f.seedCandidate(t, "alice")

	doc, err := svc.AddDocument(context.Background(), candidate.ID, domain.DocumentKindDiploma, " s3://bucket/diploma.pdf ")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/diploma.pdf", doc.StorageURL)
	assert.False(t, doc.Verified)

	verified, err := svc.VerifyDocument(context.Background(), staff.ID, doc.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, staff.ID, *verified.VerifiedBy)
}

func TestAddDocumentRequiresURL(t *testing.T) {
	f := newFixtures()
	svc := newVerificationService(f)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.AddDocument(context.Background(), candidate.ID, domain.DocumentKindOther, "  ")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)

	doc, err := svc.AddDocument(context.Background(), candidate.ID, "", "s3://bucket/x.pdf")
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentKindOther, doc.Kind)
}
