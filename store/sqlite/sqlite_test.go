package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/factory"
	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/intercompany"
	"github.com/warp/finance-engine/statement"
	"github.com/warp/finance-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// LAYOUT ROUND TRIP
// =============================================================================

func TestLayout_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	layout, lines, err := factory.ParseLayout("org-1", []byte(factory.IncomeStatementYAML))
	require.NoError(t, err)
	require.NoError(t, store.SaveLayout(ctx, layout, lines))

	got, err := store.Layout(ctx, "org-1", "income-statement")
	require.NoError(t, err)
	assert.Equal(t, "Income Statement", got.Name)
	assert.Equal(t, "income_statement", got.Kind)

	gotLines, err := store.Lines(ctx, "org-1", "income-statement")
	require.NoError(t, err)
	require.Len(t, gotLines, len(lines))

	// Ranges, sign and formula survive the JSON column round trip.
	byLine := make(map[int]statement.LineSpec)
	for _, l := range gotLines {
		byLine[l.LineNumber] = l
	}
	sales := byLine[20]
	require.Len(t, sales.Ranges, 1)
	assert.Equal(t, "4000", sales.Ranges[0].From)
	assert.Equal(t, statement.SignReversed, sales.Sign)
	assert.Equal(t, "L20 - L50", byLine[60].Formula)
	assert.NotNil(t, sales.ParentLineID)
	assert.Equal(t, 10, *sales.ParentLineID)
}

func TestLayout_UnknownID_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Layout(context.Background(), "org-1", "nope")
	assert.True(t, fincore.IsNotFound(err))
}

func TestLines_SoftDeletedExcluded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	layout, lines, err := factory.ParseLayout("org-1", []byte(factory.IncomeStatementYAML))
	require.NoError(t, err)
	require.NoError(t, store.SaveLayout(ctx, layout, lines))

	require.NoError(t, store.SoftDeleteLine(ctx, "org-1", "income-statement", 90))

	gotLines, err := store.Lines(ctx, "org-1", "income-statement")
	require.NoError(t, err)
	for _, l := range gotLines {
		assert.NotEqual(t, 90, l.LineNumber, "soft-deleted line must not load")
	}
	assert.Len(t, gotLines, len(lines)-1)
}

// =============================================================================
// BALANCES AND TRANSACTIONS
// =============================================================================

func TestBalances_ReplacePerPeriod(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveBalances(ctx, "org-1", "2025-12", []statement.AccountBalance{
		{AccountCode: "4100", BalanceMinor: 100},
	}))
	require.NoError(t, store.SaveBalances(ctx, "org-1", "2025-12", []statement.AccountBalance{
		{AccountCode: "4100", BalanceMinor: 200},
		{AccountCode: "4200", BalanceMinor: 300},
	}))

	got, err := store.Balances(ctx, "org-1", "2025-12")
	require.NoError(t, err)
	require.Len(t, got, 2, "second save replaces the first")
	assert.Equal(t, int64(200), got[0].BalanceMinor)

	other, err := store.Balances(ctx, "org-1", "2026-01")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTransactions_PreserveStoredOrder(t *testing.T) {
	// Stored order drives matcher tie-breaking; it must survive the
	// round trip exactly.
	ctx := context.Background()
	store := newTestStore(t)

	txs := []intercompany.Transaction{
		{TransactionID: "t-3", FromCompanyID: "a", ToCompanyID: "b", AmountMinor: 1, Currency: "MYR", Reference: "R"},
		{TransactionID: "t-1", FromCompanyID: "a", ToCompanyID: "b", AmountMinor: 2, Currency: "MYR", Reference: "R"},
		{TransactionID: "t-2", FromCompanyID: "a", ToCompanyID: "b", AmountMinor: 3, Currency: "MYR", Reference: "R"},
	}
	require.NoError(t, store.SaveTransactions(ctx, "org-1", "2025-12", intercompany.DirOutgoing, txs))

	got, err := store.Transactions(ctx, "org-1", "2025-12", intercompany.DirOutgoing)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t-3", got[0].TransactionID)
	assert.Equal(t, "t-1", got[1].TransactionID)
	assert.Equal(t, "t-2", got[2].TransactionID)
}

// =============================================================================
// SESSION
// =============================================================================

func TestSession_ReadWriteCommits(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	sess := store.NewSession()

	err := sess.ReadWrite(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO account_balances (org_id, period, account_code, balance_minor) VALUES (?, ?, ?, ?)`,
			"org-1", "2025-12", "4100", 42)
		return err
	})
	require.NoError(t, err)

	got, err := store.Balances(ctx, "org-1", "2025-12")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].BalanceMinor)
}

func TestSession_ReadWriteRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	sess := store.NewSession()

	boom := assert.AnError
	err := sess.ReadWrite(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO account_balances (org_id, period, account_code, balance_minor) VALUES (?, ?, ?, ?)`,
			"org-1", "2025-12", "4100", 42); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Balances(ctx, "org-1", "2025-12")
	require.NoError(t, err)
	assert.Empty(t, got, "failed callback leaves no rows behind")
}

func TestSession_ReadOnlyNeverPersists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	sess := store.NewSession()

	err := sess.ReadOnly(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO account_balances (org_id, period, account_code, balance_minor) VALUES (?, ?, ?, ?)`,
			"org-1", "2025-12", "4100", 42)
		return err
	})
	require.NoError(t, err)

	got, err := store.Balances(ctx, "org-1", "2025-12")
	require.NoError(t, err)
	assert.Empty(t, got, "read-only sessions always roll back")
}
