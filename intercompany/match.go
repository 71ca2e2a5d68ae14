/*
match.go - Greedy first-match-wins pairing

PURPOSE:
  The matching algorithm: one ordered pass over the outgoing list, each
  row scanning the incoming list left-to-right for the first unconsumed
  mirror candidate.

WHY NOT AN INDEX?
  Complexity is O(n*m), acceptable for the expected batch sizes (dozens
  to low hundreds per reconciliation run). The explicit ordered scan with
  a consumed-index set keeps tie-breaking by list order reproducible and
  auditable; a hash-based any-match would not. Do not replace without a
  profile showing it matters.

SEE ALSO:
  - types.go: MatchPair / MatchReport shapes
*/
package intercompany

import (
	"fmt"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// MATCH - Outgoing x incoming -> report
// =============================================================================

type matchInputs struct {
	Outgoing []Transaction `json:"outgoing"`
	Incoming []Transaction `json:"incoming"`
}

// Match pairs outgoing and incoming transactions. An incoming row is a
// candidate for an outgoing row when it has the reversed company pair and
// identical currency and reference. Each incoming row is consumed at most
// once; ties break by incoming-list order.
//
// A same-company outgoing row fails the run with a validation error
// naming the transaction id. Incoming rows are only ever candidates, and
// a same-company incoming row can never be one.
func Match(outgoing, incoming []Transaction) (fincore.Result[MatchReport], error) {
	consumed := make([]bool, len(incoming))
	report := MatchReport{
		Matched:           []MatchPair{},
		UnmatchedOutgoing: []Transaction{},
		UnmatchedIncoming: []Transaction{},
	}

	for _, out := range outgoing {
		if out.FromCompanyID == out.ToCompanyID {
			return fincore.Result[MatchReport]{}, sameCompanyError(out)
		}

		found := false
		for i, in := range incoming {
			if consumed[i] {
				continue
			}
			if in.FromCompanyID != out.ToCompanyID || in.ToCompanyID != out.FromCompanyID {
				continue
			}
			if in.Currency != out.Currency || in.Reference != out.Reference {
				continue
			}

			// First match wins; mark consumed by index, never remove
			// from the list mid-iteration.
			consumed[i] = true
			diff := out.AmountMinor - in.AmountMinor
			if diff < 0 {
				diff = -diff
			}
			report.Matched = append(report.Matched, MatchPair{
				Outgoing:        out,
				Incoming:        in,
				IsBalanced:      diff == 0,
				DifferenceMinor: diff,
			})
			found = true
			break
		}
		if !found {
			report.UnmatchedOutgoing = append(report.UnmatchedOutgoing, out)
		}
	}

	for i, in := range incoming {
		if !consumed[i] {
			report.UnmatchedIncoming = append(report.UnmatchedIncoming, in)
		}
	}

	balanced := len(report.BalancedPairs())
	explanation := fmt.Sprintf(
		"matched %d of %d outgoing against %d incoming (%d balanced, %d unmatched outgoing, %d unmatched incoming)",
		len(report.Matched), len(outgoing), len(incoming),
		balanced, len(report.UnmatchedOutgoing), len(report.UnmatchedIncoming),
	)

	return fincore.NewResult(report, matchInputs{Outgoing: outgoing, Incoming: incoming}, explanation), nil
}

func sameCompanyError(tx Transaction) error {
	return &fincore.ValidationError{
		Code:    "same_company_transaction",
		Message: fmt.Sprintf("intercompany transaction must cross companies, got %s on both sides", tx.FromCompanyID),
		Ref:     tx.TransactionID,
	}
}
