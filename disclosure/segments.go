/*
Package disclosure contains the narrower financial-reporting calculators.

PURPOSE:
  Six standalone pure functions sharing the fincore.Result contract and
  the validation-failure error path: segment reportability, earnings per
  share, cash-flow sectioning, XBRL tagging, related-party grouping and
  accounting-policy note assembly. None of them perform I/O.

PRECISION:
  Monetary inputs are int64 minor units. Ratios (revenue shares, coverage
  percentages, per-share amounts) are computed with decimal.Decimal and
  rounded explicitly, never with float64.

KEY CONCEPTS IN THIS FILE (segments.go):
  - Segment reportability at the 10%-of-total-external-revenue threshold.

SEE ALSO:
  - eps.go, cashflow.go, xbrl.go, relatedparty.go, policynotes.go
*/
package disclosure

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// SEGMENT REPORTABILITY - 10% external revenue threshold
// =============================================================================

// reportableThresholdPct is the disclosure threshold: a segment is
// reportable when its external revenue is at least this share of the total.
var reportableThresholdPct = decimal.NewFromInt(10)

// Segment is one operating segment's headline figures in minor units.
type Segment struct {
	Name                 string `json:"name"`
	ExternalRevenueMinor int64  `json:"external_revenue_minor"`
	ProfitMinor          int64  `json:"profit_minor"`
	AssetsMinor          int64  `json:"assets_minor"`
	LiabilitiesMinor     int64  `json:"liabilities_minor"`
}

// SegmentShare is one segment's computed share and reportability flag.
type SegmentShare struct {
	Segment    Segment         `json:"segment"`
	SharePct   decimal.Decimal `json:"share_pct"` // of total external revenue, 2dp
	Reportable bool            `json:"reportable"`
}

// SegmentAnalysis is the full reportability computation.
type SegmentAnalysis struct {
	Shares                    []SegmentShare  `json:"shares"`
	TotalExternalRevenueMinor int64           `json:"total_external_revenue_minor"`
	ReportableCoveragePct     decimal.Decimal `json:"reportable_coverage_pct"`
}

type segmentInputs struct {
	Segments []Segment `json:"segments"`
}

// SegmentReportability computes each segment's share of total external
// revenue, flags segments at or above the 10% threshold, and reports how
// much of total revenue the reportable segments cover.
//
// An empty segment list is a validation failure. A zero revenue total is
// not: every share is 0% and nothing is reportable.
func SegmentReportability(segments []Segment) (fincore.Result[SegmentAnalysis], error) {
	if len(segments) == 0 {
		return fincore.Result[SegmentAnalysis]{}, &fincore.ValidationError{
			Code:    "empty_segments",
			Message: "segment reportability requires at least one segment",
		}
	}

	var total int64
	for _, s := range segments {
		total += s.ExternalRevenueMinor
	}

	hundred := decimal.NewFromInt(100)
	totalDec := decimal.NewFromInt(total)

	analysis := SegmentAnalysis{
		Shares:                    make([]SegmentShare, 0, len(segments)),
		TotalExternalRevenueMinor: total,
		ReportableCoveragePct:     decimal.Zero,
	}

	var reportableRevenue int64
	for _, s := range segments {
		share := decimal.Zero
		if total != 0 {
			share = decimal.NewFromInt(s.ExternalRevenueMinor).Mul(hundred).Div(totalDec).Round(2)
		}
		reportable := share.GreaterThanOrEqual(reportableThresholdPct)
		if reportable {
			reportableRevenue += s.ExternalRevenueMinor
		}
		analysis.Shares = append(analysis.Shares, SegmentShare{
			Segment:    s,
			SharePct:   share,
			Reportable: reportable,
		})
	}

	if total != 0 {
		analysis.ReportableCoveragePct = decimal.NewFromInt(reportableRevenue).Mul(hundred).Div(totalDec).Round(2)
	}

	reportableCount := 0
	for _, sh := range analysis.Shares {
		if sh.Reportable {
			reportableCount++
		}
	}

	return fincore.NewResult(
		analysis,
		segmentInputs{Segments: segments},
		fmt.Sprintf("%d of %d segments reportable at the %s%% threshold, covering %s%% of external revenue",
			reportableCount, len(segments), reportableThresholdPct, analysis.ReportableCoveragePct),
	), nil
}
