package domain

import "time"

// Role identifies what kind of actor owns an account.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleEmployer  Role = "EMPLOYER"
	RoleStaff     Role = "STAFF"
	RoleAdmin     Role = "ADMIN"
)

// IsStaff reports whether the role carries back-office privileges.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// VerificationStatus tracks identity verification progress for an account.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "UNVERIFIED"
	VerificationPending    VerificationStatus = "PENDING"
	VerificationVerified   VerificationStatus = "VERIFIED"
	VerificationRejected   VerificationStatus = "REJECTED"
)

// Account is the base identity record for every actor in the marketplace.
type Account struct {
	ID                 string
	Role               Role
	Name               string
	Email              string
	PasswordHash       string
	VerificationStatus VerificationStatus
	IsVerified         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
