package fincore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// OUTCOME SUM TYPE
// =============================================================================

func TestOutcomeFor_ZeroIntents_AlwaysRead(t *testing.T) {
	outcome := fincore.OutcomeFor("some data", nil)
	_, ok := outcome.(fincore.Read)
	assert.True(t, ok)
	assert.Equal(t, "read", outcome.Kind())

	outcome = fincore.OutcomeFor("some data", []fincore.Intent{})
	_, ok = outcome.(fincore.Read)
	assert.True(t, ok, "empty slice must not produce an intent variant")
}

func TestOutcomeFor_IntentsWithoutData(t *testing.T) {
	intents := []fincore.Intent{fincore.NewIntent("ic.match", map[string]string{"id": "1"})}
	outcome := fincore.OutcomeFor(nil, intents)
	assert.Equal(t, "intent", outcome.Kind())
}

func TestOutcomeFor_IntentsWithData(t *testing.T) {
	intents := []fincore.Intent{fincore.NewIntent("ic.match", map[string]string{"id": "1"})}
	outcome := fincore.OutcomeFor("report", intents)
	assert.Equal(t, "intent+read", outcome.Kind())
}

func TestOutcome_ReadJSON_OmitsIntentsEntirely(t *testing.T) {
	raw, err := json.Marshal(fincore.Read{Data: "x"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "read", decoded["kind"])
	_, hasIntents := decoded["intents"]
	assert.False(t, hasIntents, "read outcome has no intents field at all")
}

func TestOutcome_IntentJSON_CarriesKindAndIntents(t *testing.T) {
	intents := []fincore.Intent{fincore.NewIntent("ic.eliminate", map[string]int{"n": 1})}
	raw, err := json.Marshal(fincore.IntentsWithRead{Data: "d", Intents: intents})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "intent+read", decoded["kind"])
	assert.Len(t, decoded["intents"], 1)
}

// =============================================================================
// CANONICAL DIGEST
// =============================================================================

func TestCanonicalDigest_FieldOrderIndependent(t *testing.T) {
	a := map[string]any{"alpha": 1, "beta": "two"}
	b := map[string]any{"beta": "two", "alpha": 1}
	assert.Equal(t, fincore.CanonicalDigest(a), fincore.CanonicalDigest(b))
}

func TestCanonicalDigest_StructAndMapAgree(t *testing.T) {
	type payload struct {
		Beta  string `json:"beta"`
		Alpha int    `json:"alpha"`
	}
	// Declaration order differs from key order; canonical form must not care.
	assert.Equal(t,
		fincore.CanonicalDigest(payload{Beta: "two", Alpha: 1}),
		fincore.CanonicalDigest(map[string]any{"alpha": 1, "beta": "two"}))
}

func TestCanonicalDigest_DistinctPayloads_DistinctKeys(t *testing.T) {
	assert.NotEqual(t,
		fincore.CanonicalDigest(map[string]int{"n": 1}),
		fincore.CanonicalDigest(map[string]int{"n": 2}))
}

func TestNewIntent_KeyMatchesPayloadDigest(t *testing.T) {
	payload := map[string]string{"outgoing": "out-1", "incoming": "in-1"}
	intent := fincore.NewIntent("ic.match", payload)
	assert.Equal(t, fincore.CanonicalDigest(payload), intent.IdempotencyKey)
	assert.Equal(t, "ic.match", intent.Type)
}

// =============================================================================
// RESULT
// =============================================================================

func TestResult_MapPreservesProvenance(t *testing.T) {
	r := fincore.NewResult(42, "inputs", "the answer")
	mapped := fincore.Map(r, func(v int) string { return "answer" })
	assert.Equal(t, "answer", mapped.Value)
	assert.Equal(t, "inputs", mapped.Inputs)
	assert.Equal(t, "the answer", mapped.Explanation)
}

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	err := &fincore.ValidationError{Code: "empty_segments", Message: "no segments"}
	assert.True(t, fincore.IsValidation(err))
	assert.False(t, fincore.IsNotFound(err))
	assert.Contains(t, err.Error(), "empty_segments")
}

func TestValidationError_RefInMessage(t *testing.T) {
	err := &fincore.ValidationError{Code: "same_company_transaction", Message: "bad", Ref: "tx-9"}
	assert.Contains(t, err.Error(), "tx-9")
}
