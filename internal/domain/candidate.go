package domain

import "time"

// CandidateProfile holds the extended profile attached to candidate accounts.
// PII fields here are subject to masking before employer-facing reads.
type CandidateProfile struct {
	AccountID   string
	FirstName   string
	LastName    string
	AvatarURL   string
	Address     string
	City        string
	Country     string
	Nationality string
	BirthDate   *time.Time
	Phone       string
	Headline    string
	Skills      []string
	Experience  []ExperienceEntry
	Education   []EducationEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExperienceEntry is one work-history line on a candidate profile.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education line on a candidate profile.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Candidate pairs the base account with its profile for read projections.
type Candidate struct {
	Account Account
	Profile CandidateProfile
}

// DocumentKind enumerates the kinds of documents candidates upload.
type DocumentKind string

const (
	DocumentKindIdentity DocumentKind = "IDENTITY"
	DocumentKindDiploma  DocumentKind = "DIPLOMA"
	DocumentKindResume   DocumentKind = "RESUME"
	DocumentKindOther    DocumentKind = "OTHER"
)

// Document is a pointer to an uploaded candidate document. Upload mechanics
// live outside this service; only the reference and verification flag do.
type Document struct {
	ID          string
	CandidateID string
	Kind        DocumentKind
	StorageURL  string
	Verified    bool
	VerifiedBy  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
