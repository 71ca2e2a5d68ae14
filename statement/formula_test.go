package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/finance-engine/statement"
)

// =============================================================================
// FORMULA EVALUATION
// =============================================================================

func TestEvaluate_AdditionAndSubtraction(t *testing.T) {
	amounts := map[int]int64{10: 1000, 30: 200}
	assert.Equal(t, int64(800), statement.Evaluate("L10 - L30", amounts).Value)
	assert.Equal(t, int64(1200), statement.Evaluate("L10 + L30", amounts).Value)
}

func TestEvaluate_LeadingSign(t *testing.T) {
	amounts := map[int]int64{10: 1000}
	assert.Equal(t, int64(-1000), statement.Evaluate("-L10", amounts).Value)
	assert.Equal(t, int64(1000), statement.Evaluate("+L10", amounts).Value)
}

func TestEvaluate_EmptyFormula_Zero(t *testing.T) {
	result := statement.Evaluate("", map[int]int64{10: 1000})
	assert.Equal(t, int64(0), result.Value)
}

func TestEvaluate_UnknownReference_TreatedAsZero(t *testing.T) {
	// Absence of a valid token is a neutral value, not a fault.
	result := statement.Evaluate("L99 + L10", map[int]int64{10: 1000})
	assert.Equal(t, int64(1000), result.Value)
}

func TestEvaluate_GarbageTokens_Ignored(t *testing.T) {
	result := statement.Evaluate("total of L10 and stuff", map[int]int64{10: 42})
	assert.Equal(t, int64(42), result.Value)
}

func TestEvaluate_WhitespaceInsensitive(t *testing.T) {
	amounts := map[int]int64{10: 500, 20: 100}
	assert.Equal(t,
		statement.Evaluate("L10-L20", amounts).Value,
		statement.Evaluate("  L10  -  L20  ", amounts).Value)
}

func TestEvaluate_ExplanationNotEmpty(t *testing.T) {
	result := statement.Evaluate("L10 - L30", map[int]int64{10: 1000, 30: 200})
	assert.NotEmpty(t, result.Explanation)
}
