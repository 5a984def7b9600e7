package dto

import (
	"time"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// CandidateResponse is the role-dependent read shape of a pool candidate.
// Fields already masked by the projection layer arrive empty here.
type CandidateResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	IsVerified         bool                      `json:"is_verified"`
	AvatarURL          string                    `json:"avatar_url,omitempty"`
	Address            string                    `json:"address,omitempty"`
	City               string                    `json:"city,omitempty"`
	Country            string                    `json:"country,omitempty"`
	Nationality        string                    `json:"nationality,omitempty"`
	BirthDate          *time.Time                `json:"birth_date,omitempty"`
	Phone              string                    `json:"phone,omitempty"`
	Headline           string                    `json:"headline,omitempty"`
	Skills             []string                  `json:"skills"`
	Experience         []domain.ExperienceEntry  `json:"experience"`
	Education          []domain.EducationEntry   `json:"education"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// UpdateProfileRequest payload for candidate-self profile updates.
type UpdateProfileRequest struct {
	FirstName   string                   `json:"first_name"`
	LastName    string                   `json:"last_name"`
	AvatarURL   string                   `json:"avatar_url"`
	Address     string                   `json:"address"`
	City        string                   `json:"city"`
	Country     string                   `json:"country"`
	Nationality string                   `json:"nationality"`
	BirthDate   *time.Time               `json:"birth_date"`
	Phone       string                   `json:"phone"`
	Headline    string                   `json:"headline"`
	Skills      []string                 `json:"skills"`
	Experience  []domain.ExperienceEntry `json:"experience"`
	Education   []domain.EducationEntry  `json:"education"`
}

// ExposureResponse summarizes a candidate's marketplace visibility.
type ExposureResponse struct {
	ProfileViews       int64                     `json:"profile_views"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	IsVerified         bool                      `json:"is_verified"`
	PendingConsents    int                       `json:"pending_consents"`
	DocumentsTotal     int                       `json:"documents_total"`
	DocumentsVerified  int                       `json:"documents_verified"`
}

// DocumentResponse is the read shape of a candidate document pointer.
type DocumentResponse struct {
	ID          string              `json:"id"`
	CandidateID string              `json:"candidate_id"`
	Kind        domain.DocumentKind `json:"kind"`
	StorageURL  string              `json:"storage_url"`
	Verified    bool                `json:"verified"`
	VerifiedBy  *string             `json:"verified_by,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// AddDocumentRequest payload for registering an uploaded document.
type AddDocumentRequest struct {
	Kind       domain.DocumentKind `json:"kind"`
	StorageURL string              `json:"storage_url"`
}
