package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Role     domain.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   AccountResponse `json:"account"`
}

// AccountResponse is the public shape of an account.
type AccountResponse struct {
	ID                 string                    `json:"id"`
	Role               domain.Role               `json:"role"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	IsVerified         bool                      `json:"is_verified"`
	CreatedAt          time.Time                 `json:"created_at"`
}
