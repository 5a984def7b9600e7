package view

import (
	"strings"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

// MaskedEmail replaces candidate email addresses in employer-facing reads.
const MaskedEmail = "candidate@masked.talent-bridge.io"

// AnonymizeCandidate strips personally identifying fields from a candidate
// record for employer viewers. Pure and idempotent: applying it twice yields
// the same result as applying it once. Skills, experience, education,
// headline, and verification flags stay untouched since they are the
// employer-relevant signals.
func AnonymizeCandidate(candidate domain.Candidate) domain.Candidate {
	candidate.Account.Name = DisplayName(candidate.Profile.FirstName, candidate.Profile.LastName)
	candidate.Account.Email = MaskedEmail
	candidate.Account.PasswordHash = ""

	candidate.Profile.AvatarURL = ""
	candidate.Profile.Address = ""
	candidate.Profile.City = ""
	candidate.Profile.Country = ""
	candidate.Profile.Nationality = ""
	candidate.Profile.BirthDate = nil
	candidate.Profile.Phone = ""
	return candidate
}

// DisplayName builds the public-facing candidate name from profile name
// parts, falling back to "Candidate" when both are empty.
func DisplayName(firstName, lastName string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		return "Candidate"
	}
	return name
}
