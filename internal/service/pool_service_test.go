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

func newPoolService(f *fixtures) *PoolService {
	return NewPoolService(PoolDependencies{
		CandidateRepo: f.candidates,
		ConsentRepo:   f.consents,
		DocumentRepo:  f.documents,
		ViewCounter:   f.views,
	})
}

func TestGetCandidateCountsEmployerViews(t *testing.T) {
	f := newFixtures()
	svc := newPoolService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	employerViewer := view.Viewer{Role: domain.RoleEmployer, SelfID: employer.ID}
	_, err := svc.GetCandidate(context.Background(), employerViewer, candidate.ID)
	require.NoError(t, err)
	_, err = svc.GetCandidate(context.Background(), employerViewer, candidate.ID)
	require.NoError(t, err)

	// staff and self reads do not count toward exposure
	_, err = svc.GetCandidate(context.Background(), view.Viewer{Role: domain.RoleStaff, SelfID: "op"}, candidate.ID)
	require.NoError(t, err)
	_, err = svc.GetCandidate(context.Background(), view.Viewer{Role: domain.RoleCandidate, SelfID: candidate.ID}, candidate.ID)
	require.NoError(t, err)

	count, err := f.views.Get(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetCandidateMasksForEmployer(t *testing.T) {
	f := newFixtures()
	svc := newPoolService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	masked, err := svc.GetCandidate(context.Background(), view.Viewer{Role: domain.RoleEmployer, SelfID: employer.ID}, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, view.MaskedEmail, masked.Account.Email)
	assert.Equal(t, []string{"go", "sql"}, masked.Profile.Skills)

	raw, err := svc.GetCandidate(context.Background(), view.Viewer{Role: domain.RoleCandidate, SelfID: candidate.ID}, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate.Email, raw.Account.Email)
}

func TestListCandidatesSkillFilter(t *testing.T) {
	f := newFixtures()
	svc := newPoolService(f)
	f.seedCandidate(t, "alice")
	bob := f.seedCandidate(t, "bob")
	profile := domain.CandidateProfile{AccountID: bob.ID, Skills: []string{"rust"}}
	require.NoError(t, f.candidates.UpsertProfile(context.Background(), &profile))

	skill := "go"
	viewer := view.Viewer{Role: domain.RoleStaff, SelfID: "op"}
	matched, err := svc.ListCandidates(context.Background(), viewer, &skill, 20, 0)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "alice@example.com", matched[0].Account.Email)

	all, err := svc.ListCandidates(context.Background(), viewer, nil, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetExposure(t *testing.T) {
	f := newFixtures()
	svc := newPoolService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	consents := newConsentService(f)
	_, err := consents.Create(context.Background(), employer.ID, candidate.ID, "")
	require.NoError(t, err)

	verification := NewVerificationService(VerificationDependencies{
		AccountRepo:  f.accounts,
		DocumentRepo: f.documents,
		Dispatcher:   f.dispatcher,
	})
	doc, err := verification.AddDocument(context.Background(), candidate.ID, domain.DocumentKindResume, "s3://bucket/cv.pdf")
	require.NoError(t, err)
	_, err = verification.AddDocument(context.Background(), candidate.ID, domain.DocumentKindIdentity, "s3://bucket/id.pdf")
	require.NoError(t, err)
	staff := f.seedStaff(t, "op")
	_, err = verification.VerifyDocument(context.Background(), staff.ID, doc.ID)
	require.NoError(t, err)

	require.NoError(t, f.views.Increment(context.Background(), candidate.ID))

	exposure, err := svc.GetExposure(context.Background(), candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), exposure.ProfileViews)
	assert.Equal(t, 1, exposure.PendingConsents)
	assert.Equal(t, 2, exposure.DocumentsTotal)
	assert.Equal(t, 1, exposure.DocumentsVerified)
	assert.Equal(t, domain.VerificationUnverified, exposure.VerificationStatus)
}

func TestGetExposureUnknownCandidate(t *testing.T) {
	f := newFixtures()
	svc := newPoolService(f)

	_, err := svc.GetExposure(context.Background(), "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}
