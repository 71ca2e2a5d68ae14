/*
store.go - Persistence interface for intercompany transaction rows

PURPOSE:
  What the reconciliation service needs from the persistence
  collaborator: the outgoing and incoming transaction batches for an
  organization and period, already decoded from storage.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite
  - store/memory: In-memory for tests
*/
package intercompany

import (
	"context"

	"github.com/warp/finance-engine/fincore"
)

// Direction distinguishes the two sides of a reconciliation batch.
type Direction string

const (
	DirOutgoing Direction = "outgoing"
	DirIncoming Direction = "incoming"
)

// Store loads intercompany transaction rows. Read-only from the
// service's point of view; writes happen behind the command dispatcher.
type Store interface {
	// Transactions returns the organization's rows for a period and
	// direction, in stored order. Stored order is load-bearing: the
	// matcher's tie-breaking follows it.
	Transactions(ctx context.Context, org fincore.OrgID, period string, dir Direction) ([]Transaction, error)
}
