package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/talent-bridge/internal/config"
	"github.com/spec-kit/talent-bridge/internal/domain"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

func newAuthService(f *fixtures) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, AuthDependencies{
		AccountRepo:   f.accounts,
		CandidateRepo: f.candidates,
	})
}

func TestRegisterCandidateSeedsProfile(t *testing.T) {
	f := newFixtures()
	svc := newAuthService(f)

	account, token, _, err := svc.Register(context.Background(), domain.RoleCandidate, "Alice", "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, domain.VerificationUnverified, account.VerificationStatus)

	candidate, err := f.candidates.GetByAccountID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, candidate.Profile.AccountID)
}

func TestRegisterRejectsStaffRoles(t *testing.T) {
	f := newFixtures()
	svc := newAuthService(f)

	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleAdmin, "INTERN"} {
		_, _, _, err := svc.Register(context.Background(), role, "Eve", "eve@example.com", "pw123456")
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixtures()
	svc := newAuthService(f)

	_, _, _, err := svc.Register(context.Background(), domain.RoleEmployer, "Acme", "hr@acme.com", "pw123456")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), domain.RoleEmployer, "Acme Again", "hr@acme.com", "pw123456")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestLogin(t *testing.T) {
	f := newFixtures()
	svc := newAuthService(f)

	_, _, _, err := svc.Register(context.Background(), domain.RoleEmployer, "Acme", "hr@acme.com", "pw123456")
	require.NoError(t, err)

	account, token, _, err := svc.Login(context.Background(), "hr@acme.com", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleEmployer, account.Role)

	_, _, _, err = svc.Login(context.Background(), "hr@acme.com", "wrong")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)

	_, _, _, err = svc.Login(context.Background(), "ghost@acme.com", "pw123456")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestChangePassword(t *testing.T) {
	f := newFixtures()
	svc := newAuthService(f)

	account, _, _, err := svc.Register(context.Background(), domain.RoleEmployer, "Acme", "hr@acme.com", "pw123456")
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), account.ID, "wrong", "newpw1234")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)

	require.NoError(t, svc.ChangePassword(context.Background(), account.ID, "pw123456", "newpw1234"))

	_, _, _, err = svc.Login(context.Background(), "hr@acme.com", "newpw1234")
	require.NoError(t, err)
}
