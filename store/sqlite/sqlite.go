/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements the engine's persistence collaborators using SQLite. In
  production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

INTERFACES IMPLEMENTED:
  statement.Store:    Layout, line and balance loading
  intercompany.Store: Intercompany transaction batches

DATA SESSION:
  Session exposes the transactional read-only / read-write callback
  contract the services are written against. ReadOnly wraps a
  database/sql transaction that is always rolled back; ReadWrite commits
  when the callback returns nil.

SOFT DELETES:
  Layout lines carry a deleted flag. Loading honors it - soft-deleted
  rows never reach the calculation core.

KEY TABLES:
  layouts:           Statement layout headers per organization
  layout_lines:      Line specs, account ranges as JSON
  account_balances:  Per-org, per-period balances in minor units
  ic_transactions:   Intercompany rows, direction tagged

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/finance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := statement.NewService(store)

SEE ALSO:
  - statement/store.go, intercompany/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/intercompany"
	"github.com/warp/finance-engine/statement"
)

// Store implements the storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS layouts (
		id TEXT NOT NULL,
		org_id TEXT NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		PRIMARY KEY (org_id, id)
	);

	CREATE TABLE IF NOT EXISTS layout_lines (
		org_id TEXT NOT NULL,
		layout_id TEXT NOT NULL,
		line_number INTEGER NOT NULL,
		label TEXT NOT NULL,
		line_type TEXT NOT NULL,
		indent_level INTEGER NOT NULL DEFAULT 0,
		parent_line_id INTEGER,
		account_ranges_json TEXT,
		sign_convention TEXT NOT NULL DEFAULT 'normal',
		formula TEXT,
		is_bold INTEGER NOT NULL DEFAULT 0,
		show_if_zero INTEGER NOT NULL DEFAULT 0,
		deleted INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (org_id, layout_id, line_number)
	);

	CREATE INDEX IF NOT EXISTS idx_layout_lines_layout
		ON layout_lines(org_id, layout_id);

	CREATE TABLE IF NOT EXISTS account_balances (
		org_id TEXT NOT NULL,
		period TEXT NOT NULL,
		account_code TEXT NOT NULL,
		balance_minor INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_account_balances_period
		ON account_balances(org_id, period);

	CREATE TABLE IF NOT EXISTS ic_transactions (
		org_id TEXT NOT NULL,
		period TEXT NOT NULL,
		direction TEXT NOT NULL,
		seq INTEGER NOT NULL,
		transaction_id TEXT NOT NULL,
		from_company_id TEXT NOT NULL,
		to_company_id TEXT NOT NULL,
		amount_minor INTEGER NOT NULL,
		currency TEXT NOT NULL,
		reference TEXT NOT NULL,
		PRIMARY KEY (org_id, period, direction, seq)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SESSION - Transactional read-only / read-write callbacks
// =============================================================================

// Session runs callbacks inside database transactions. Services depend on
// this indirectly through the per-domain Store interfaces; callers that
// need multi-table atomicity use it directly.
type Session struct {
	db *sql.DB
}

// NewSession wraps the store's connection.
func (s *Store) NewSession() *Session {
	return &Session{db: s.db}
}

// ReadOnly runs fn inside a transaction that is always rolled back.
func (sess *Session) ReadOnly(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := sess.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return fn(tx)
}

// ReadWrite runs fn inside a transaction, committing when fn returns nil.
func (sess *Session) ReadWrite(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := sess.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// =============================================================================
// STATEMENT STORE
// =============================================================================

// Layout returns the layout header, or fincore.ErrNotFound.
func (s *Store) Layout(ctx context.Context, org fincore.OrgID, layoutID string) (statement.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, org_id, name, kind FROM layouts WHERE org_id = ? AND id = ?`,
		string(org), layoutID)

	var l statement.Layout
	var orgID string
	if err := row.Scan(&l.ID, &orgID, &l.Name, &l.Kind); err != nil {
		if err == sql.ErrNoRows {
			return statement.Layout{}, fmt.Errorf("layout %s: %w", layoutID, fincore.ErrNotFound)
		}
		return statement.Layout{}, err
	}
	l.OrgID = fincore.OrgID(orgID)
	return l, nil
}

// Lines returns the layout's non-deleted line specs.
func (s *Store) Lines(ctx context.Context, org fincore.OrgID, layoutID string) ([]statement.LineSpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT line_number, label, line_type, indent_level, parent_line_id,
		       account_ranges_json, sign_convention, formula, is_bold, show_if_zero
		FROM layout_lines
		WHERE org_id = ? AND layout_id = ? AND deleted = 0
		ORDER BY line_number`,
		string(org), layoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specs []statement.LineSpec
	for rows.Next() {
		var (
			spec       statement.LineSpec
			parent     sql.NullInt64
			rangesJSON sql.NullString
			formula    sql.NullString
			bold, zero int
		)
		if err := rows.Scan(&spec.LineNumber, &spec.Label, &spec.Type, &spec.IndentLevel,
			&parent, &rangesJSON, &spec.Sign, &formula, &bold, &zero); err != nil {
			return nil, err
		}
		if parent.Valid {
			p := int(parent.Int64)
			spec.ParentLineID = &p
		}
		if rangesJSON.Valid && rangesJSON.String != "" {
			if err := json.Unmarshal([]byte(rangesJSON.String), &spec.Ranges); err != nil {
				return nil, fmt.Errorf("decode ranges for line %d: %w", spec.LineNumber, err)
			}
		}
		spec.Formula = formula.String
		spec.Bold = bold != 0
		spec.ShowIfZero = zero != 0
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

// Balances returns the per-period account balances for the organization.
func (s *Store) Balances(ctx context.Context, org fincore.OrgID, period string) ([]statement.AccountBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT account_code, balance_minor
		FROM account_balances
		WHERE org_id = ? AND period = ?
		ORDER BY account_code`,
		string(org), period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []statement.AccountBalance
	for rows.Next() {
		var b statement.AccountBalance
		if err := rows.Scan(&b.AccountCode, &b.BalanceMinor); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// =============================================================================
// INTERCOMPANY STORE
// =============================================================================

// Transactions returns the rows for a period and direction in stored
// (seq) order. Stored order drives the matcher's tie-breaking.
func (s *Store) Transactions(ctx context.Context, org fincore.OrgID, period string, dir intercompany.Direction) ([]intercompany.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, from_company_id, to_company_id, amount_minor, currency, reference
		FROM ic_transactions
		WHERE org_id = ? AND period = ? AND direction = ?
		ORDER BY seq`,
		string(org), period, string(dir))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []intercompany.Transaction
	for rows.Next() {
		var tx intercompany.Transaction
		if err := rows.Scan(&tx.TransactionID, &tx.FromCompanyID, &tx.ToCompanyID,
			&tx.AmountMinor, &tx.Currency, &tx.Reference); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// =============================================================================
// SEEDING WRITES - Used by cmd/server seeding and tests
// =============================================================================
// The calculation engine itself never writes; these exist so an operator
// can load layouts and rows into a fresh database.

// SaveLayout upserts a layout header and replaces its lines.
func (s *Store) SaveLayout(ctx context.Context, layout statement.Layout, lines []statement.LineSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.NewSession().ReadWrite(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO layouts (id, org_id, name, kind) VALUES (?, ?, ?, ?)`,
			layout.ID, string(layout.OrgID), layout.Name, layout.Kind); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM layout_lines WHERE org_id = ? AND layout_id = ?`,
			string(layout.OrgID), layout.ID); err != nil {
			return err
		}
		for _, spec := range lines {
			var rangesJSON sql.NullString
			if spec.Ranges != nil {
				raw, err := json.Marshal(spec.Ranges)
				if err != nil {
					return err
				}
				rangesJSON = sql.NullString{String: string(raw), Valid: true}
			}
			var parent sql.NullInt64
			if spec.ParentLineID != nil {
				parent = sql.NullInt64{Int64: int64(*spec.ParentLineID), Valid: true}
			}
			sign := spec.Sign
			if sign == "" {
				sign = statement.SignNormal
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO layout_lines
					(org_id, layout_id, line_number, label, line_type, indent_level,
					 parent_line_id, account_ranges_json, sign_convention, formula,
					 is_bold, show_if_zero, deleted)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
				string(layout.OrgID), layout.ID, spec.LineNumber, spec.Label, string(spec.Type),
				spec.IndentLevel, parent, rangesJSON, string(sign), spec.Formula,
				boolInt(spec.Bold), boolInt(spec.ShowIfZero)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SoftDeleteLine marks one layout line deleted without removing the row.
func (s *Store) SoftDeleteLine(ctx context.Context, org fincore.OrgID, layoutID string, lineNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`UPDATE layout_lines SET deleted = 1 WHERE org_id = ? AND layout_id = ? AND line_number = ?`,
		string(org), layoutID, lineNumber)
	return err
}

// SaveBalances replaces the organization's balances for a period.
func (s *Store) SaveBalances(ctx context.Context, org fincore.OrgID, period string, balances []statement.AccountBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.NewSession().ReadWrite(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM account_balances WHERE org_id = ? AND period = ?`,
			string(org), period); err != nil {
			return err
		}
		for _, b := range balances {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO account_balances (org_id, period, account_code, balance_minor) VALUES (?, ?, ?, ?)`,
				string(org), period, b.AccountCode, b.BalanceMinor); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveTransactions replaces a direction's rows for a period, preserving
// input order as the stored order.
func (s *Store) SaveTransactions(ctx context.Context, org fincore.OrgID, period string, dir intercompany.Direction, txs []intercompany.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.NewSession().ReadWrite(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM ic_transactions WHERE org_id = ? AND period = ? AND direction = ?`,
			string(org), period, string(dir)); err != nil {
			return err
		}
		for i, t := range txs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO ic_transactions
					(org_id, period, direction, seq, transaction_id,
					 from_company_id, to_company_id, amount_minor, currency, reference)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				string(org), period, string(dir), i, t.TransactionID,
				t.FromCompanyID, t.ToCompanyID, t.AmountMinor, t.Currency, t.Reference); err != nil {
				return err
			}
		}
		return nil
	})
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
