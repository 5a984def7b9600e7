package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/events"
	"github.com/spec-kit/talent-bridge/internal/repository/memory"
)

type fixtures struct {
	accounts   *memory.AccountStore
	candidates *memory.CandidateStore
	documents  *memory.DocumentStore
	pipelines  *memory.PipelineStore
	consents   *memory.ConsentStore
	quotes     *memory.QuoteStore
	interviews *memory.InterviewStore
	audits     *memory.AuditStore
	views      *memory.ViewCounterStore
	dispatcher events.Dispatcher
}

func newFixtures() *fixtures {
	accounts := memory.NewAccountStore()
	return &fixtures{
		accounts:   accounts,
		candidates: memory.NewCandidateStore(accounts),
		documents:  memory.NewDocumentStore(),
		pipelines:  memory.NewPipelineStore(),
		consents:   memory.NewConsentStore(),
		quotes:     memory.NewQuoteStore(),
		interviews: memory.NewInterviewStore(),
		audits:     memory.NewAuditStore(),
		views:      memory.NewViewCounterStore(),
		dispatcher: events.NewInMemoryDispatcher(),
	}
}

func (f *fixtures) seedCandidate(t *testing.T, name string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Role:               domain.RoleCandidate,
		Name:               name,
		Email:              name + "@example.com",
		VerificationStatus: domain.VerificationUnverified,
	}
	require.NoError(t, f.accounts.Create(context.Background(), account))
	profile := &domain.CandidateProfile{
		AccountID: account.ID,
		FirstName: name,
		LastName:  "Tester",
		Skills:    []string{"go", "sql"},
	}
	require.NoError(t, f.candidates.UpsertProfile(context.Background(), profile))
	return account
}

func (f *fixtures) seedEmployer(t *testing.T, name string, verified bool) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Role:       domain.RoleEmployer,
		Name:       name,
		Email:      name + "@example.com",
		IsVerified: verified,
	}
	account.VerificationStatus = domain.VerificationUnverified
	if verified {
		account.VerificationStatus = domain.VerificationVerified
	}
	require.NoError(t, f.accounts.Create(context.Background(), account))
	return account
}

func (f *fixtures) seedStaff(t *testing.T, name string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Role:  domain.RoleStaff,
		Name:  name,
		Email: name + "@example.com",
	}
	require.NoError(t, f.accounts.Create(context.Background(), account))
	return account
}
