package dto

import "github.com/spec-kit/talent-bridge/internal/domain"

// SetVerificationRequest payload for staff verification decisions.
type SetVerificationRequest struct {
	Status domain.VerificationStatus `json:"status"`
}
