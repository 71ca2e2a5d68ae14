/*
errors.go - Centralized error types for the calculation engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine has a single error taxonomy: validation failures. Everything
  else (database errors, context cancellation) belongs to the collaborators
  around the engine, not to the engine itself.

PROPAGATION POLICY:
  Calculators and intent builders never catch or swallow validation
  failures - they propagate to the service caller, which surfaces them as
  the invocation's final error. A validation failure must never be
  silently converted into an empty or default outcome.

USAGE:
  if len(items) == 0 {
      return fincore.Result[CashFlow]{}, &fincore.ValidationError{
          Code:    "empty_items",
          Message: "cash flow statement requires at least one line item",
      }
  }

  Callers test with errors.Is / the predicate:

    if fincore.IsValidation(err) { ... reject the request ... }

SEE ALSO:
  - record.go: The Result envelope returned on the success path
*/
package fincore

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the root of the engine's single error kind: a
	// precondition on calculator input was violated. Wrapped by
	// ValidationError, which carries the machine-readable detail.
	ErrValidation = errors.New("validation failure")

	// ErrNotFound is returned by stores when a referenced layout, line set,
	// or transaction batch does not exist for the requesting organization.
	ErrNotFound = errors.New("not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a violated precondition. Code is machine-readable
// (snake_case); Ref, when set, names the offending identifier such as a
// transaction id or segment name.
type ValidationError struct {
	Code    string
	Message string
	Ref     string
}

func (e *ValidationError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s: %s (ref: %s)", e.Code, e.Message, e.Ref)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation reports whether err is (or wraps) a validation failure.
// HTTP layers map these to 422, never to 500.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err indicates a missing stored row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
