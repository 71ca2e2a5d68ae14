/*
Package fincore provides the core contracts of the financial calculation engine.

PURPOSE:
  This package contains the shared return shapes and error types that every
  calculator in the engine uses. Whether rendering a statement, matching
  intercompany transactions, or computing diluted EPS, the same envelope
  carries the answer back to the caller.

KEY CONCEPTS IN THIS FILE (record.go):
  - Result[T]: The universal pure-function return shape. A computed value,
    the inputs that produced it, and a human-readable explanation.

DESIGN PRINCIPLES:
  1. Purity: Constructing a Result never has observable side effects.
  2. Traceability: Inputs are echoed back so an auditor can reproduce the
     value without re-reading the database.
  3. Explanation is documentation, not a signal: callers must never branch
     on the explanation text.
  4. Precision: Monetary amounts are int64 minor units everywhere;
     percentages use decimal.Decimal to avoid floating-point errors.

USAGE:
  res := fincore.NewResult(total, inputs,
      fmt.Sprintf("summed %d balances into %d lines", len(balances), len(lines)))

SEE ALSO:
  - outcome.go: The tri-state service return wrapper
  - intent.go: Command descriptors emitted alongside results
  - errors.go: The validation-failure error kind
*/
package fincore

// =============================================================================
// RESULT - Universal pure-function return envelope
// =============================================================================

// Result carries a computed value together with the inputs that produced it
// and a textual explanation of how. Every calculator in the engine returns
// this shape; none of them perform I/O.
type Result[T any] struct {
	// Value is the computed answer.
	Value T `json:"value"`

	// Inputs echoes the arguments the calculation was given. Kept for
	// auditability; a reviewer can recompute Value from Inputs alone.
	Inputs any `json:"inputs,omitempty"`

	// Explanation is a human-readable account of the calculation.
	// It is derived solely from Value and Inputs and must never be
	// used for control flow.
	Explanation string `json:"explanation"`
}

// NewResult constructs a Result. It is the only constructor; there is
// deliberately no way to attach an explanation that disagrees with the
// value it describes after the fact.
func NewResult[T any](value T, inputs any, explanation string) Result[T] {
	return Result[T]{Value: value, Inputs: inputs, Explanation: explanation}
}

// Map converts a Result's value while preserving inputs and explanation.
// Used by services that reshape calculator output for transport.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	return Result[U]{Value: fn(r.Value), Inputs: r.Inputs, Explanation: r.Explanation}
}
