/*
Package statement renders hierarchical financial-statement layouts.

PURPOSE:
  Turns a list of statement-line specifications plus a flat list of
  account balances into rendered, visible-or-hidden line amounts. Detail
  lines aggregate account balances by code range; subtotal and total
  lines are computed from earlier lines via a small formula language.

KEY CONCEPTS IN THIS FILE (types.go):
  - LineSpec: One row of a statement layout (header, detail, subtotal,
    total or blank), with account ranges, sign convention and formula.
  - AccountBalance: A single account's balance in integer minor units.
    Multiple balances with the same code accumulate.
  - RenderedLine: The output row, carrying the computed amount and the
    visibility decision.

DESIGN PRINCIPLES:
  1. Minor units: All amounts are int64 minor units (e.g. cents).
  2. String-ordered account codes: Ranges compare codes as strings and
     expect zero-padded fixed-width codes ("4100" <= "4150" <= "4199").
  3. Ascending line number IS evaluation order. See render.go.

SEE ALSO:
  - render.go: The two-pass rendering algorithm
  - formula.go: The L<number> formula evaluator
  - service.go: Store-backed orchestration
*/
package statement

// =============================================================================
// LINE SPECIFICATION - One row of a statement layout
// =============================================================================

// LineType classifies how a line's amount is produced.
type LineType string

const (
	LineHeader   LineType = "header"   // Section heading, amount fixed at 0
	LineDetail   LineType = "detail"   // Aggregates account balances by range
	LineSubtotal LineType = "subtotal" // Computed from earlier lines via formula
	LineTotal    LineType = "total"    // Computed from earlier lines via formula
	LineBlank    LineType = "blank"    // Spacer, amount fixed at 0
)

// SignConvention controls whether a detail line's aggregate is negated.
// Revenue and liability accounts carry credit balances; layouts mark those
// lines reversed so they display positive.
type SignConvention string

const (
	SignNormal   SignConvention = "normal"
	SignReversed SignConvention = "reversed"
)

// AccountRange is an inclusive [From, To] bound over account codes,
// compared as strings. Codes are expected to be zero-padded fixed width.
type AccountRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Contains reports whether the account code falls inside the range.
func (r AccountRange) Contains(code string) bool {
	return r.From <= code && code <= r.To
}

// LineSpec is one row of a statement layout.
//
// INVARIANTS (validated by factory, relied on here):
//   - LineNumber is unique within a layout and is the sort/evaluation key.
//   - Detail lines have non-nil AccountRanges.
//   - Subtotal/total formulas reference only lower-numbered lines; the
//     renderer does not detect cycles and reads 0 for unresolved refs.
type LineSpec struct {
	LineNumber   int            `json:"line_number"`
	Label        string         `json:"label"`
	Type         LineType       `json:"line_type"`
	IndentLevel  int            `json:"indent_level"`
	ParentLineID *int           `json:"parent_line_id,omitempty"`
	Ranges       []AccountRange `json:"account_ranges,omitempty"`
	Sign         SignConvention `json:"sign_convention,omitempty"`
	Formula      string         `json:"formula,omitempty"`
	Bold         bool           `json:"is_bold"`
	ShowIfZero   bool           `json:"show_if_zero"`
}

// =============================================================================
// ACCOUNT BALANCE - Input multiset, keyed by account code
// =============================================================================

// AccountBalance is a single account's pre-aggregated period balance in
// integer minor units. Duplicated codes accumulate during rendering.
type AccountBalance struct {
	AccountCode  string `json:"account_code"`
	BalanceMinor int64  `json:"balance_minor"`
}

// =============================================================================
// RENDERED LINE - Output row
// =============================================================================

// RenderedLine is the computed output for one layout row.
type RenderedLine struct {
	LineNumber  int      `json:"line_number"`
	Label       string   `json:"label"`
	Type        LineType `json:"line_type"`
	IndentLevel int      `json:"indent_level"`
	AmountMinor int64    `json:"amount_minor"`
	Bold        bool     `json:"is_bold"`
	Visible     bool     `json:"visible"`
}

// visible applies the visibility rule: zero-amount lines are hidden unless
// the line opts in via ShowIfZero, but headers and blanks always show.
func visible(spec LineSpec, amount int64) bool {
	if spec.ShowIfZero || amount != 0 {
		return true
	}
	return spec.Type == LineHeader || spec.Type == LineBlank
}
