/*
Package intercompany matches mirrored transactions between group companies.

PURPOSE:
  When company A books a sale to group company B, B should book the
  mirrored purchase from A. This package pairs outgoing and incoming
  transactions by counterparty, currency and reference, flags balanced
  and unbalanced pairs, reports unmatched leftovers, and emits intents
  for the effects a reconciliation authorizes (match, mirror, eliminate).

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction: One intercompany row in integer minor units.
  - MatchPair: An accepted outgoing/incoming pairing with its balance check.
  - MatchReport: The full result of one matching run.

DESIGN PRINCIPLES:
  1. Matched is not the same as balanced: a pair with differing amounts
     is still reported as matched, with IsBalanced=false. Consumers
     decide whether unbalanced pairs are actionable.
  2. Determinism: first-match-wins over list order, so the same inputs
     always produce the same pairs. See match.go.

SEE ALSO:
  - match.go: The greedy matching algorithm
  - intents.go: ic.match / ic.mirror / ic.eliminate builders
  - service.go: Store-backed reconciliation
*/
package intercompany

// =============================================================================
// TRANSACTION - One intercompany row
// =============================================================================

// Transaction is a single intercompany transaction. Amounts are integer
// minor units, pre-converted upstream; Currency is informational and must
// match exactly for a pairing.
//
// INVARIANT: FromCompanyID != ToCompanyID. Violations are rejected at
// match time with a validation failure, not at construction.
type Transaction struct {
	TransactionID string `json:"transaction_id"`
	FromCompanyID string `json:"from_company_id"`
	ToCompanyID   string `json:"to_company_id"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
}

// =============================================================================
// MATCH PAIR / REPORT - Matching output
// =============================================================================

// MatchPair is an accepted pairing of one outgoing and one incoming
// transaction. DifferenceMinor is always non-negative.
type MatchPair struct {
	Outgoing        Transaction `json:"outgoing"`
	Incoming        Transaction `json:"incoming"`
	IsBalanced      bool        `json:"is_balanced"`
	DifferenceMinor int64       `json:"difference_minor"`
}

// MatchReport is the complete result of one matching run.
type MatchReport struct {
	Matched           []MatchPair   `json:"matched"`
	UnmatchedOutgoing []Transaction `json:"unmatched_outgoing"`
	UnmatchedIncoming []Transaction `json:"unmatched_incoming"`
}

// BalancedPairs returns the matched pairs whose amounts agree exactly.
// These are the pairs a reconciliation may act on.
func (r MatchReport) BalancedPairs() []MatchPair {
	var balanced []MatchPair
	for _, p := range r.Matched {
		if p.IsBalanced {
			balanced = append(balanced, p)
		}
	}
	return balanced
}
