package service

import (
	"fmt"
	"strings"

	"github.com/spec-kit/talent-bridge/internal/domain"
)

const (
	standardOptionID = "tier-standard"
	premiumOptionID  = "tier-premium"

	defaultStandardLowerBound = 3000
	minimumLowerBound         = 1500
	maximumLowerBound         = 1_000_000
)

// BuildQuoteOptions generates the two pricing tiers attached to an approved
// quote. It is a pure function of the optional costEstimate seed: the same
// input always yields the same options, and item amounts sum to the lower
// bound of each tier's stated cost range. Candidate attributes do not
// influence pricing here.
func BuildQuoteOptions(costEstimate string) []domain.QuoteOption {
	lower := parseLowerBound(costEstimate)
	premiumLower := lower * 2

	standard := domain.QuoteOption{
		ID:        standardOptionID,
		Name:      "Standard Placement",
		CostRange: fmt.Sprintf("$%d - $%d", lower, lower+1500),
		Perks: []string{
			"Identity and document verification",
			"Interview scheduling support",
			"30-day onboarding assistance",
		},
		Items: []domain.QuoteItem{
			{Label: "Placement fee", Amount: lower - 1000, Description: "Sourcing and placement of the candidate"},
			{Label: "Verification", Amount: 500, Description: "Identity and document checks"},
			{Label: "Onboarding support", Amount: 500, Description: "First month onboarding assistance"},
		},
	}

	premium := domain.QuoteOption{
		ID:        premiumOptionID,
		Name:      "Premium Placement",
		CostRange: fmt.Sprintf("$%d - $%d", premiumLower, premiumLower+2500),
		Perks: []string{
			"Identity and document verification",
			"Interview scheduling support",
			"Dedicated success manager",
			"90-day replacement guarantee",
		},
		Items: []domain.QuoteItem{
			{Label: "Placement fee", Amount: premiumLower - 2000, Description: "Sourcing and placement of the candidate"},
			{Label: "Verification", Amount: 500, Description: "Identity and document checks"},
			{Label: "Success manager", Amount: 1000, Description: "Dedicated point of contact through onboarding"},
			{Label: "Replacement guarantee", Amount: 500, Description: "Free replacement within 90 days"},
		},
	}

	return []domain.QuoteOption{standard, premium}
}

// parseLowerBound extracts the first integer from a free-form cost estimate
// such as "$4,500 - $6,000". Estimates below the minimum, above the maximum,
// or unparseable ones fall back to the default lower bound. The maximum also
// stops accumulation before a long digit run can overflow int.
func parseLowerBound(costEstimate string) int {
	value := 0
	found := false
	for _, r := range strings.TrimSpace(costEstimate) {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			found = true
			if value > maximumLowerBound {
				return defaultStandardLowerBound
			}
			continue
		}
		if r == ',' && found {
			continue
		}
		if found {
			break
		}
	}
	if !found || value < minimumLowerBound {
		return defaultStandardLowerBound
	}
	return value
}
