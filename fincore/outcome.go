/*
outcome.go - The tri-state service return value

PURPOSE:
  Every service in the engine returns an Outcome: either a pure read, a
  set of intents to apply, or both. The shape is a closed sum type so a
  caller is forced to handle all three variants explicitly - there is no
  way to obtain intents from a Read, and no way to construct an
  intent-carrying variant with zero intents.

WHY A SEALED INTERFACE?
  An open struct with optional fields would let a dispatcher check
  len(intents) and silently treat an empty slice as "nothing to do".
  The invariant here is stronger: the VARIANT is the signal. A service
  that computed zero applicable effects must return Read, so the
  dispatcher never needs to inspect slice length.

VARIANTS:
  Read            {Data}            - pure read, no side effect implied
  Intents         {Intents}         - effects only, nothing to display
  IntentsWithRead {Data, Intents}   - effects plus the data that justified them

USAGE:
  switch o := outcome.(type) {
  case fincore.Read:
      render(o.Data)
  case fincore.Intents:
      dispatch(o.Intents)
  case fincore.IntentsWithRead:
      render(o.Data)
      dispatch(o.Intents)
  }

SEE ALSO:
  - intent.go: The Intent descriptor carried by the intent variants
*/
package fincore

import "encoding/json"

// =============================================================================
// OUTCOME - Closed sum over read / intent / intent+read
// =============================================================================

// Outcome is the discriminated return value of a service call. The three
// implementations in this file are the only ones; the unexported marker
// method seals the set.
type Outcome interface {
	// Kind returns the wire discriminator: "read", "intent" or "intent+read".
	Kind() string

	isOutcome()
}

// Read is a pure read: data was computed, no state change is authorized.
type Read struct {
	Data any
}

// Intents authorizes state changes with no accompanying read data.
// Invariant: the slice is non-empty; construct via OutcomeFor or ensure
// non-emptiness at the call site.
type Intents struct {
	Intents []Intent
}

// IntentsWithRead authorizes state changes and carries the computed data
// that justified them. Invariant: the slice is non-empty.
type IntentsWithRead struct {
	Data    any
	Intents []Intent
}

func (Read) Kind() string            { return "read" }
func (Intents) Kind() string         { return "intent" }
func (IntentsWithRead) Kind() string { return "intent+read" }

func (Read) isOutcome()            {}
func (Intents) isOutcome()         {}
func (IntentsWithRead) isOutcome() {}

// OutcomeFor picks the correct variant for a service result. Zero intents
// always yields Read - never an intent variant with an empty slice - so a
// dispatcher can treat the variant itself as the "anything to apply?" signal.
func OutcomeFor(data any, intents []Intent) Outcome {
	switch {
	case len(intents) == 0:
		return Read{Data: data}
	case data == nil:
		return Intents{Intents: intents}
	default:
		return IntentsWithRead{Data: data, Intents: intents}
	}
}

// =============================================================================
// JSON - Wire shape with a kind discriminator
// =============================================================================
// The engine itself has no wire format; this marshalling exists for the
// HTTP layer in api/. Note the intent variants always serialize a
// non-empty "intents" array and Read serializes no "intents" field at all.

func (o Read) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Data any    `json:"data"`
	}{o.Kind(), o.Data})
}

func (o Intents) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string   `json:"kind"`
		Intents []Intent `json:"intents"`
	}{o.Kind(), o.Intents})
}

func (o IntentsWithRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string   `json:"kind"`
		Data    any      `json:"data"`
		Intents []Intent `json:"intents"`
	}{o.Kind(), o.Data, o.Intents})
}
