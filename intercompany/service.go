/*
service.go - Reconciliation orchestration

PURPOSE:
  Runs one reconciliation: load outgoing rows -> load incoming rows ->
  Match -> build intents -> assemble the Domain Outcome.

OUTCOME-KIND DISCIPLINE:
  Intents are emitted only for matched-and-balanced pairs (plus mirror
  proposals when requested). When zero qualifying pairs exist the service
  returns a plain Read with the match report - never an intent variant
  with an empty slice - so the dispatcher can treat the outcome kind as
  "is there anything to apply" without inspecting lengths.

SEE ALSO:
  - match.go: The pairing algorithm
  - intents.go: The effect builders
*/
package intercompany

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// SERVICE
// =============================================================================

// Service runs intercompany reconciliations over stored rows.
type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

// ReconcileOptions tunes which effects a run authorizes.
type ReconcileOptions struct {
	// ProposeMirrors adds an ic.mirror intent per unmatched outgoing row.
	ProposeMirrors bool

	// Eliminate adds an ic.eliminate intent per balanced pair, alongside
	// the ic.match confirmation.
	Eliminate bool
}

// RunReport wraps the match result with run metadata for auditability.
type RunReport struct {
	RunID   string                      `json:"run_id"`
	OrgID   fincore.OrgID               `json:"org_id"`
	Period  string                      `json:"period"`
	ActorID string                      `json:"actor_id"`
	Result  fincore.Result[MatchReport] `json:"result"`
}

// Reconcile loads both directions for the period, matches them, and
// returns IntentsWithRead when at least one balanced pair (or mirror
// proposal) authorizes an effect, else Read with the bare report.
func (s *Service) Reconcile(ctx context.Context, inv fincore.Invocation, period string, opts ReconcileOptions) (fincore.Outcome, error) {
	outgoing, err := s.Store.Transactions(ctx, inv.OrgID, period, DirOutgoing)
	if err != nil {
		return nil, fmt.Errorf("load outgoing transactions: %w", err)
	}

	incoming, err := s.Store.Transactions(ctx, inv.OrgID, period, DirIncoming)
	if err != nil {
		return nil, fmt.Errorf("load incoming transactions: %w", err)
	}

	result, err := Match(outgoing, incoming)
	if err != nil {
		return nil, err
	}

	var intents []fincore.Intent
	for _, pair := range result.Value.BalancedPairs() {
		intents = append(intents, BuildMatchIntent(inv.OrgID, pair))
		if opts.Eliminate {
			intents = append(intents, BuildEliminateIntent(inv.OrgID, pair))
		}
	}
	if opts.ProposeMirrors {
		for _, tx := range result.Value.UnmatchedOutgoing {
			intents = append(intents, BuildMirrorIntent(inv.OrgID, tx))
		}
	}

	report := RunReport{
		RunID:   uuid.NewString(),
		OrgID:   inv.OrgID,
		Period:  period,
		ActorID: inv.ActorID,
		Result:  result,
	}

	return fincore.OutcomeFor(report, intents), nil
}
