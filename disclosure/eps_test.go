package disclosure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/disclosure"
	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// EARNINGS PER SHARE
// =============================================================================

func TestEarningsPerShare_Basic(t *testing.T) {
	// (1,000,000 - 100,000) / 900 shares = 1,000 minor units per share

	result, err := disclosure.EarningsPerShare(disclosure.EPSInput{
		NetIncomeMinor:          1000000,
		PreferredDividendsMinor: 100000,
		WeightedAverageShares:   900,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.Value.BasicEPSMinor)
	assert.Equal(t, result.Value.BasicEPSMinor, result.Value.DilutedEPSMinor,
		"no options, diluted equals basic")
}

func TestEarningsPerShare_RoundsToNearest(t *testing.T) {
	// 1000 / 300 = 3.33 -> 3; 2000 / 300 = 6.67 -> 7
	result, err := disclosure.EarningsPerShare(disclosure.EPSInput{
		NetIncomeMinor: 1000, WeightedAverageShares: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Value.BasicEPSMinor)

	result, err = disclosure.EarningsPerShare(disclosure.EPSInput{
		NetIncomeMinor: 2000, WeightedAverageShares: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Value.BasicEPSMinor)
}

func TestEarningsPerShare_TreasuryStockDilution(t *testing.T) {
	// GIVEN: 100 options at exercise 4000 with market 5000
	// THEN: Buyback = floor(100*4000/5000) = 80, incremental = 20
	//       Diluted EPS = 1,020,000 / (1000 + 20) = 1,000

	result, err := disclosure.EarningsPerShare(disclosure.EPSInput{
		NetIncomeMinor:        1020000,
		WeightedAverageShares: 1000,
		DilutiveOptions:       100,
		ExercisePriceMinor:    4000,
		MarketPriceMinor:      5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), result.Value.DilutiveSharesAdded)
	assert.Equal(t, int64(1020), result.Value.BasicEPSMinor)
	assert.Equal(t, int64(1000), result.Value.DilutedEPSMinor)
}

func TestEarningsPerShare_OutOfTheMoney_NoDilution(t *testing.T) {
	// Market price at or below exercise price: zero incremental shares,
	// diluted equals basic. Boundary case uses equality.

	for _, market := range []int64{4000, 3000} {
		result, err := disclosure.EarningsPerShare(disclosure.EPSInput{
			NetIncomeMinor:        1000000,
			WeightedAverageShares: 1000,
			DilutiveOptions:       100,
			ExercisePriceMinor:    4000,
			MarketPriceMinor:      market,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Value.DilutiveSharesAdded, "market %d", market)
		assert.Equal(t, result.Value.BasicEPSMinor, result.Value.DilutedEPSMinor, "market %d", market)
	}
}

func TestEarningsPerShare_NonPositiveShares_ValidationFailure(t *testing.T) {
	for _, shares := range []int64{0, -5} {
		_, err := disclosure.EarningsPerShare(disclosure.EPSInput{
			NetIncomeMinor: 1000, WeightedAverageShares: shares,
		})
		require.Error(t, err, "shares %d", shares)
		assert.True(t, fincore.IsValidation(err))
	}
}
