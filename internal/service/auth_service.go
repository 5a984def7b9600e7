package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/talent-bridge/internal/auth"
	"github.com/spec-kit/talent-bridge/internal/config"
	"github.com/spec-kit/talent-bridge/internal/domain"
	"github.com/spec-kit/talent-bridge/internal/repository"
	apperrors "github.com/spec-kit/talent-bridge/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	accounts   repository.AccountRepository
	candidates repository.CandidateRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AccountRepo   repository.AccountRepository
	CandidateRepo repository.CandidateRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		candidates: deps.CandidateRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a candidate or employer account. Staff accounts are
// provisioned out of band, never through self-registration.
func (s *AuthService) Register(ctx context.Context, role domain.Role, name, email, password string) (*domain.Account, string, time.Time, error) {
	if role != domain.RoleCandidate && role != domain.RoleEmployer {
		return nil, "", time.Time{}, apperrors.NewBadRequest("role must be CANDIDATE or EMPLOYER", map[string]any{"role": role})
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, "", time.Time{}, apperrors.NewBadRequest("email and password are required", nil)
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !apperrors.IsNotFound(err) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Role:               role,
		Name:               strings.TrimSpace(name),
		Email:              email,
		PasswordHash:       hash,
		VerificationStatus: domain.VerificationUnverified,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", time.Time{}, err
	}

	if role == domain.RoleCandidate {
		// the pool lists candidates as soon as they exist, so seed an
		// empty profile rather than leaving a join hole
		profile := &domain.CandidateProfile{AccountID: account.ID}
		if err := s.candidates.UpsertProfile(ctx, profile); err != nil {
			return nil, "", time.Time{}, err
		}
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// Login authenticates any account role against its stored hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(account.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	return s.accounts.Update(ctx, account)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
