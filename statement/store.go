/*
store.go - Persistence interface for statement layouts and balances

PURPOSE:
  Defines what the statement service needs from the persistence
  collaborator. The engine never talks to a database directly; it reads
  row-shaped inputs through this interface.

SOFT DELETES:
  Implementations must exclude soft-deleted lines before rows reach the
  renderer - the calculation core has no notion of deletion.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite
  - store/memory: In-memory for tests

SEE ALSO:
  - service.go: The consumer of this interface
*/
package statement

import (
	"context"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// STORE - Read interface consumed by the statement service
// =============================================================================

// Layout identifies a stored statement layout.
type Layout struct {
	ID    string
	OrgID fincore.OrgID
	Name  string
	Kind  string // "income_statement", "balance_sheet", ...
}

// Store loads layout rows for an organization. All methods are read-only.
type Store interface {
	// Layout returns the layout header, or fincore.ErrNotFound.
	Layout(ctx context.Context, org fincore.OrgID, layoutID string) (Layout, error)

	// Lines returns the layout's line specs with soft-deleted rows
	// already excluded. Order is unspecified; the renderer sorts.
	Lines(ctx context.Context, org fincore.OrgID, layoutID string) ([]LineSpec, error)

	// Balances returns the per-period account balances for the
	// organization, already aggregated and currency-converted upstream.
	Balances(ctx context.Context, org fincore.OrgID, period string) ([]AccountBalance, error)
}
