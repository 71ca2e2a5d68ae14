/*
render.go - The statement rendering algorithm

PURPOSE:
  The central calculation of the statement package: fold account balances
  into a code-keyed map, then walk the layout in ascending line-number
  order, computing each line's amount and visibility.

EVALUATION ORDER IS A CONTRACT:
  Ascending line number is both the display order and the formula
  dependency order. A formula may only reference lines with a strictly
  smaller number; there is no topological sort and no cycle detection.
  A forward or unknown reference silently reads 0. Downstream calculators
  depend on this exact behavior - do not replace the single ascending
  pass with a dependency-graph solver.

RANGE MATCHING:
  An account matching multiple ranges on the same line is counted once;
  the scan short-circuits on the first containing range.

SEE ALSO:
  - formula.go: Subtotal/total evaluation
  - types.go: The visibility rule
*/
package statement

import (
	"fmt"
	"sort"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// RENDER - Layout + balances -> rendered lines
// =============================================================================

// renderInputs echoes the arguments into the Result for auditability.
type renderInputs struct {
	Lines    []LineSpec       `json:"lines"`
	Balances []AccountBalance `json:"balances"`
}

// Render computes the amount and visibility of every layout line.
// Pure: equal inputs yield byte-equal output. Empty inputs are not an
// error - an empty layout renders to an empty slice, and empty balances
// render every detail line as 0.
func Render(lines []LineSpec, balances []AccountBalance) fincore.Result[[]RenderedLine] {
	// 1. Fold balances into a multiset keyed by account code.
	byCode := make(map[string]int64, len(balances))
	for _, b := range balances {
		byCode[b.AccountCode] += b.BalanceMinor
	}

	// 2. Ascending line number = evaluation order.
	ordered := make([]LineSpec, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LineNumber < ordered[j].LineNumber
	})

	lineAmounts := make(map[int]int64, len(ordered))
	rendered := make([]RenderedLine, 0, len(ordered))

	for _, spec := range ordered {
		var amount int64

		switch spec.Type {
		case LineDetail:
			amount = sumRanges(spec, byCode)
		case LineSubtotal, LineTotal:
			amount = Evaluate(spec.Formula, lineAmounts).Value
		case LineHeader, LineBlank:
			// fixed at 0
		}

		lineAmounts[spec.LineNumber] = amount
		rendered = append(rendered, RenderedLine{
			LineNumber:  spec.LineNumber,
			Label:       spec.Label,
			Type:        spec.Type,
			IndentLevel: spec.IndentLevel,
			AmountMinor: amount,
			Bold:        spec.Bold,
			Visible:     visible(spec, amount),
		})
	}

	return fincore.NewResult(
		rendered,
		renderInputs{Lines: lines, Balances: balances},
		fmt.Sprintf("rendered %d lines from %d account balances (%d distinct codes)",
			len(rendered), len(balances), len(byCode)),
	)
}

// sumRanges aggregates the balances covered by a detail line's ranges.
// First containing range wins, so an account spanning overlapping ranges
// on the same line is counted exactly once. A nil range list contributes 0.
func sumRanges(spec LineSpec, byCode map[string]int64) int64 {
	var sum int64
	for code, balance := range byCode {
		for _, r := range spec.Ranges {
			if r.Contains(code) {
				sum += balance
				break
			}
		}
	}
	if spec.Sign == SignReversed {
		sum = -sum
	}
	return sum
}
