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

func newPipelineService(f *fixtures) *PipelineService {
	return NewPipelineService(PipelineDependencies{
		PipelineRepo:  f.pipelines,
		CandidateRepo: f.candidates,
		Dispatcher:    f.dispatcher,
	})
}

func TestPipelineUpsertCreatesAndOverwrites(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	relation, err := svc.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusPotential)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusPotential, relation.Status)

	// any stage is reachable from any stage
	relation, err = svc.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusHired)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusHired, relation.Status)

	stored, err := f.pipelines.GetByPair(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusHired, stored.Status)
}

func TestPipelineUpsertValidatesStatus(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, "FIRED")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "BAD_REQUEST", domainErr.Code)
}

func TestPipelineUpsertRequiresCandidate(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)

	_, err := svc.UpsertStatus(context.Background(), employer.ID, employer.ID, "ghost", domain.PipelineStatusPotential)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestForceInterviewedOverwritesHired(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusHired)
	require.NoError(t, err)

	require.NoError(t, svc.ForceInterviewed(context.Background(), employer.ID, employer.ID, candidate.ID))

	stored, err := f.pipelines.GetByPair(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusInterviewed, stored.Status)
}

func TestForceInterviewedCreatesMissingRelation(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	require.NoError(t, svc.ForceInterviewed(context.Background(), employer.ID, employer.ID, candidate.ID))

	stored, err := f.pipelines.GetByPair(context.Background(), employer.ID, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStatusInterviewed, stored.Status)
}

func TestPipelineListMasksForEmployer(t *testing.T) {
	f := newFixtures()
	svc := newPipelineService(f)
	employer := f.seedEmployer(t, "acme", true)
	candidate := f.seedCandidate(t, "alice")

	_, err := svc.UpsertStatus(context.Background(), employer.ID, employer.ID, candidate.ID, domain.PipelineStatusShortlisted)
	require.NoError(t, err)

	entries, err := svc.ListForEmployer(context.Background(), view.Viewer{Role: domain.RoleEmployer, SelfID: employer.ID}, employer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, view.MaskedEmail, entries[0].Candidate.Account.Email)

	staffEntries, err := svc.ListAll(context.Background(), view.Viewer{Role: domain.RoleStaff, SelfID: "staff"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, staffEntries, 1)
	assert.Equal(t, candidate.Email, staffEntries[0].Candidate.Account.Email)
}
