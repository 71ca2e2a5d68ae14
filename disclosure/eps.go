/*
eps.go - Basic and diluted earnings per share

PURPOSE:
  Basic EPS: (net income - preferred dividends) / weighted-average shares,
  rounded to the nearest integer minor unit.

  Diluted EPS adds in-the-money options via the treasury-stock method:
  the option holders' exercise proceeds are assumed to buy back shares at
  market, so only the shortfall dilutes:

    incremental = options - floor(options * exercisePrice / marketPrice)

  Incremental shares are added only when market price exceeds exercise
  price; at or below it, dilution is zero and diluted EPS equals basic.
*/
package disclosure

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// EARNINGS PER SHARE
// =============================================================================

// EPSInput carries the per-share calculation inputs. Prices and income
// are minor units; share and option counts are whole shares.
type EPSInput struct {
	NetIncomeMinor          int64 `json:"net_income_minor"`
	PreferredDividendsMinor int64 `json:"preferred_dividends_minor"`
	WeightedAverageShares   int64 `json:"weighted_average_shares"`
	DilutiveOptions         int64 `json:"dilutive_options"`
	ExercisePriceMinor      int64 `json:"exercise_price_minor"`
	MarketPriceMinor        int64 `json:"market_price_minor"`
}

// EPSFigures is the computed result, per-share amounts in minor units.
type EPSFigures struct {
	BasicEPSMinor       int64 `json:"basic_eps_minor"`
	DilutedEPSMinor     int64 `json:"diluted_eps_minor"`
	DilutiveSharesAdded int64 `json:"dilutive_shares_added"`
}

// EarningsPerShare computes basic and diluted EPS. A non-positive
// weighted-average share count is a validation failure.
func EarningsPerShare(in EPSInput) (fincore.Result[EPSFigures], error) {
	if in.WeightedAverageShares <= 0 {
		return fincore.Result[EPSFigures]{}, &fincore.ValidationError{
			Code:    "non_positive_shares",
			Message: fmt.Sprintf("weighted-average shares must be positive, got %d", in.WeightedAverageShares),
		}
	}

	earnings := decimal.NewFromInt(in.NetIncomeMinor - in.PreferredDividendsMinor)
	basic := earnings.Div(decimal.NewFromInt(in.WeightedAverageShares)).Round(0).IntPart()

	// Treasury-stock method: options dilute only when in the money.
	var incremental int64
	if in.DilutiveOptions > 0 && in.MarketPriceMinor > in.ExercisePriceMinor {
		buyback := decimal.NewFromInt(in.DilutiveOptions).
			Mul(decimal.NewFromInt(in.ExercisePriceMinor)).
			Div(decimal.NewFromInt(in.MarketPriceMinor)).
			Floor().IntPart()
		incremental = in.DilutiveOptions - buyback
	}

	diluted := basic
	if incremental > 0 {
		diluted = earnings.Div(decimal.NewFromInt(in.WeightedAverageShares + incremental)).Round(0).IntPart()
	}

	figures := EPSFigures{
		BasicEPSMinor:       basic,
		DilutedEPSMinor:     diluted,
		DilutiveSharesAdded: incremental,
	}

	explanation := fmt.Sprintf("basic EPS %d over %d shares", basic, in.WeightedAverageShares)
	if incremental > 0 {
		explanation = fmt.Sprintf("%s; %d incremental dilutive shares give diluted EPS %d",
			explanation, incremental, diluted)
	} else {
		explanation += "; options not in the money, diluted equals basic"
	}

	return fincore.NewResult(figures, in, explanation), nil
}
