// Package memory provides in-memory Store implementations (for testing/dev).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/intercompany"
	"github.com/warp/finance-engine/statement"
)

// =============================================================================
// MEMORY STORE - In-memory implementation of the storage interfaces
// =============================================================================

type Store struct {
	mu       sync.RWMutex
	layouts  map[layoutKey]statement.Layout
	lines    map[layoutKey][]statement.LineSpec
	balances map[periodKey][]statement.AccountBalance
	icRows   map[batchKey][]intercompany.Transaction
}

type layoutKey struct {
	Org      fincore.OrgID
	LayoutID string
}

type periodKey struct {
	Org    fincore.OrgID
	Period string
}

type batchKey struct {
	Org       fincore.OrgID
	Period    string
	Direction intercompany.Direction
}

func New() *Store {
	return &Store{
		layouts:  make(map[layoutKey]statement.Layout),
		lines:    make(map[layoutKey][]statement.LineSpec),
		balances: make(map[periodKey][]statement.AccountBalance),
		icRows:   make(map[batchKey][]intercompany.Transaction),
	}
}

// =============================================================================
// STATEMENT STORE
// =============================================================================

func (m *Store) Layout(_ context.Context, org fincore.OrgID, layoutID string) (statement.Layout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.layouts[layoutKey{Org: org, LayoutID: layoutID}]
	if !ok {
		return statement.Layout{}, fmt.Errorf("layout %s: %w", layoutID, fincore.ErrNotFound)
	}
	return l, nil
}

func (m *Store) Lines(_ context.Context, org fincore.OrgID, layoutID string) ([]statement.LineSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.lines[layoutKey{Org: org, LayoutID: layoutID}]
	out := make([]statement.LineSpec, len(src))
	copy(out, src)
	return out, nil
}

func (m *Store) Balances(_ context.Context, org fincore.OrgID, period string) ([]statement.AccountBalance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.balances[periodKey{Org: org, Period: period}]
	out := make([]statement.AccountBalance, len(src))
	copy(out, src)
	return out, nil
}

// =============================================================================
// INTERCOMPANY STORE
// =============================================================================

func (m *Store) Transactions(_ context.Context, org fincore.OrgID, period string, dir intercompany.Direction) ([]intercompany.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.icRows[batchKey{Org: org, Period: period, Direction: dir}]
	out := make([]intercompany.Transaction, len(src))
	copy(out, src)
	return out, nil
}

// =============================================================================
// SEEDING WRITES
// =============================================================================

func (m *Store) SaveLayout(_ context.Context, layout statement.Layout, lines []statement.LineSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := layoutKey{Org: layout.OrgID, LayoutID: layout.ID}
	m.layouts[k] = layout
	m.lines[k] = append([]statement.LineSpec(nil), lines...)
	return nil
}

func (m *Store) SaveBalances(_ context.Context, org fincore.OrgID, period string, balances []statement.AccountBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.balances[periodKey{Org: org, Period: period}] = append([]statement.AccountBalance(nil), balances...)
	return nil
}

func (m *Store) SaveTransactions(_ context.Context, org fincore.OrgID, period string, dir intercompany.Direction, txs []intercompany.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.icRows[batchKey{Org: org, Period: period, Direction: dir}] = append([]intercompany.Transaction(nil), txs...)
	return nil
}
