/*
intents.go - Intent builders for reconciliation effects

PURPOSE:
  Pure constructors for the three effects a reconciliation can authorize:

    ic.match      confirm an outgoing/incoming pairing
    ic.mirror     propose the missing mirror row for an unmatched outgoing
    ic.eliminate  eliminate a balanced pair from consolidated figures

  Builders do type-shaping only. Validation happens in the calculator or
  service layer BEFORE a builder is invoked; by the time a builder runs,
  the decision to emit the effect has already been made.

IDEMPOTENCY:
  Keys are canonical-JSON digests of the fields that define the exact
  effect (transaction ids, amounts, currency, reference), so resubmitting
  the same logical intent is recognizable downstream.

SEE ALSO:
  - fincore/intent.go: Intent shape and CanonicalDigest
  - service.go: Decides which builders to invoke
*/
package intercompany

import "github.com/warp/finance-engine/fincore"

// =============================================================================
// INTENT PAYLOADS
// =============================================================================

// MatchPayload records a confirmed pairing.
type MatchPayload struct {
	OrgID           fincore.OrgID `json:"org_id"`
	OutgoingID      string        `json:"outgoing_id"`
	IncomingID      string        `json:"incoming_id"`
	IsBalanced      bool          `json:"is_balanced"`
	DifferenceMinor int64         `json:"difference_minor"`
}

// MirrorPayload proposes the reversed-side row for an unmatched outgoing
// transaction.
type MirrorPayload struct {
	OrgID         fincore.OrgID `json:"org_id"`
	SourceID      string        `json:"source_id"`
	FromCompanyID string        `json:"from_company_id"`
	ToCompanyID   string        `json:"to_company_id"`
	AmountMinor   int64         `json:"amount_minor"`
	Currency      string        `json:"currency"`
	Reference     string        `json:"reference"`
}

// EliminatePayload removes a balanced pair from consolidated figures.
type EliminatePayload struct {
	OrgID       fincore.OrgID `json:"org_id"`
	OutgoingID  string        `json:"outgoing_id"`
	IncomingID  string        `json:"incoming_id"`
	AmountMinor int64         `json:"amount_minor"`
	Currency    string        `json:"currency"`
}

// =============================================================================
// BUILDERS - Pure, no validation
// =============================================================================

// BuildMatchIntent records a pairing, balanced or not.
func BuildMatchIntent(org fincore.OrgID, pair MatchPair) fincore.Intent {
	return fincore.NewIntent("ic.match", MatchPayload{
		OrgID:           org,
		OutgoingID:      pair.Outgoing.TransactionID,
		IncomingID:      pair.Incoming.TransactionID,
		IsBalanced:      pair.IsBalanced,
		DifferenceMinor: pair.DifferenceMinor,
	})
}

// BuildMirrorIntent proposes the mirror row for an unmatched outgoing
// transaction: company pair reversed, amount/currency/reference carried over.
func BuildMirrorIntent(org fincore.OrgID, unmatched Transaction) fincore.Intent {
	return fincore.NewIntent("ic.mirror", MirrorPayload{
		OrgID:         org,
		SourceID:      unmatched.TransactionID,
		FromCompanyID: unmatched.ToCompanyID,
		ToCompanyID:   unmatched.FromCompanyID,
		AmountMinor:   unmatched.AmountMinor,
		Currency:      unmatched.Currency,
		Reference:     unmatched.Reference,
	})
}

// BuildEliminateIntent eliminates a balanced pair. Callers must only pass
// balanced pairs; the builder does not re-check.
func BuildEliminateIntent(org fincore.OrgID, pair MatchPair) fincore.Intent {
	return fincore.NewIntent("ic.eliminate", EliminatePayload{
		OrgID:       org,
		OutgoingID:  pair.Outgoing.TransactionID,
		IncomingID:  pair.Incoming.TransactionID,
		AmountMinor: pair.Outgoing.AmountMinor,
		Currency:    pair.Outgoing.Currency,
	})
}
