package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuoteOptionsDeterministic(t *testing.T) {
	first := BuildQuoteOptions("$4,500 - $6,000")
	second := BuildQuoteOptions("$4,500 - $6,000")
	assert.Equal(t, first, second)
}

func TestBuildQuoteOptionsTwoTiers(t *testing.T) {
	options := BuildQuoteOptions("")
	require.Len(t, options, 2)
	assert.Equal(t, "tier-standard", options[0].ID)
	assert.Equal(t, "tier-premium", options[1].ID)
	assert.False(t, options[0].Selected)
	assert.False(t, options[1].Selected)
}

func TestBuildQuoteOptionsItemsSumToLowerBound(t *testing.T) {
	cases := []struct {
		estimate      string
		standardLower int
	}{
		{"", 3000},
		{"$4,500 - $6,000", 4500},
		{"2000", 2000},
		{"garbage", 3000},
		{"$100", 3000}, // below minimum falls back
	}
	for _, tc := range cases {
		t.Run(tc.estimate, func(t *testing.T) {
			options := BuildQuoteOptions(tc.estimate)
			require.Len(t, options, 2)

			standardSum := 0
			for _, item := range options[0].Items {
				standardSum += item.Amount
			}
			assert.Equal(t, tc.standardLower, standardSum)
			assert.Equal(t, fmt.Sprintf("$%d - $%d", tc.standardLower, tc.standardLower+1500), options[0].CostRange)

			premiumLower := tc.standardLower * 2
			premiumSum := 0
			for _, item := range options[1].Items {
				premiumSum += item.Amount
			}
			assert.Equal(t, premiumLower, premiumSum)
			assert.Equal(t, fmt.Sprintf("$%d - $%d", premiumLower, premiumLower+2500), options[1].CostRange)
		})
	}
}

func TestParseLowerBoundStopsAtFirstNumber(t *testing.T) {
	assert.Equal(t, 4500, parseLowerBound("$4,500 - $9,999"))
	assert.Equal(t, 3000, parseLowerBound(""))
	assert.Equal(t, 3000, parseLowerBound("call us"))
}

func TestParseLowerBoundRejectsAbsurdEstimates(t *testing.T) {
	assert.Equal(t, 3000, parseLowerBound("$1,000,001"))
	assert.Equal(t, 3000, parseLowerBound("99999999999999999999"))
	assert.Equal(t, maximumLowerBound, parseLowerBound("$1,000,000"))
}
