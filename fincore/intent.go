/*
intent.go - Command descriptors and deterministic idempotency keys

PURPOSE:
  An Intent is a typed, idempotency-keyed command object representing
  "an effect to be applied". The engine constructs intents but never
  applies them - that is the job of an external command dispatcher.

TYPE TAG CONVENTION:
  "<bounded-context>.<action>", e.g. "ic.match", "ic.mirror", "ic.eliminate".

IDEMPOTENCY:
  The key is a sha256 digest of a canonical JSON rendering of the fields
  that define "this exact effect". Canonical means: object keys sorted,
  no insignificant whitespace, independent of struct field order in Go
  source. Re-submitting the same logical intent therefore produces the
  same key, which an at-least-once dispatcher can use to deduplicate.

OWNERSHIP:
  Intents are transient. They are owned by the caller from construction
  until hand-off to the dispatcher and are never persisted by the engine.

SEE ALSO:
  - outcome.go: How services attach intents to their return value
  - intercompany/intents.go: The concrete ic.* builders
*/
package fincore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// =============================================================================
// INTENT - A command descriptor, constructed but never applied here
// =============================================================================

// Intent describes an effect for a downstream command handler to apply.
type Intent struct {
	// Type tags the command, "<bounded-context>.<action>".
	Type string `json:"type"`

	// Payload is the domain-specific command body.
	Payload any `json:"payload"`

	// IdempotencyKey is a deterministic digest of the payload fields that
	// define this exact effect. See CanonicalDigest.
	IdempotencyKey string `json:"idempotency_key"`
}

// NewIntent builds an Intent whose idempotency key is derived from the
// payload itself. Builders that key on a subset of the payload call
// CanonicalDigest directly instead.
func NewIntent(intentType string, payload any) Intent {
	return Intent{
		Type:           intentType,
		Payload:        payload,
		IdempotencyKey: CanonicalDigest(payload),
	}
}

// =============================================================================
// CANONICAL DIGEST - Stable serialization for idempotency keys
// =============================================================================

// CanonicalDigest returns the sha256 hex digest of a canonical JSON
// rendering of v: object keys sorted, no whitespace, stable across runs
// and across field declaration order.
//
// The canonical form is produced by round-tripping through encoding/json:
// marshalling a map[string]any sorts its keys, so decoding the first
// rendering into generic values and re-encoding yields a key-ordered
// document regardless of how v declares its fields.
func CanonicalDigest(v any) string {
	canonical, err := canonicalJSON(v)
	if err != nil {
		// Unmarshalable payloads (channels, cycles) are programmer errors;
		// fall back to a digest of the error text so the key is still
		// deterministic for a given payload type.
		canonical = []byte(fmt.Sprintf("unencodable:%v", err))
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	// encoding/json emits map keys in sorted order.
	return json.Marshal(generic)
}
