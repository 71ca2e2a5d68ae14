package disclosure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/disclosure"
	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// CASH FLOW STATEMENT
// =============================================================================

func TestCashFlowStatement_SectionsAndRollForward(t *testing.T) {
	items := []disclosure.CashFlowItem{
		{Label: "Receipts from customers", Section: disclosure.SectionOperating, AmountMinor: 500000},
		{Label: "Payments to suppliers", Section: disclosure.SectionOperating, AmountMinor: -300000},
		{Label: "Purchase of equipment", Section: disclosure.SectionInvesting, AmountMinor: -150000},
		{Label: "Proceeds from borrowings", Section: disclosure.SectionFinancing, AmountMinor: 100000},
	}

	result, err := disclosure.CashFlowStatement(50000, items)
	require.NoError(t, err)

	cf := result.Value
	assert.Equal(t, int64(200000), cf.OperatingMinor)
	assert.Equal(t, int64(-150000), cf.InvestingMinor)
	assert.Equal(t, int64(100000), cf.FinancingMinor)
	assert.Equal(t, int64(150000), cf.NetChangeMinor)
	assert.Equal(t, int64(50000), cf.OpeningCashMinor)
	assert.Equal(t, int64(200000), cf.ClosingCashMinor)
}

func TestCashFlowStatement_EmptyItems_ValidationFailure(t *testing.T) {
	_, err := disclosure.CashFlowStatement(1000, nil)
	require.Error(t, err)
	assert.True(t, fincore.IsValidation(err))
}

func TestCashFlowStatement_UnknownSection_ValidationFailure(t *testing.T) {
	_, err := disclosure.CashFlowStatement(0, []disclosure.CashFlowItem{
		{Label: "Mystery", Section: "speculating", AmountMinor: 1},
	})
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "unknown_section", vErr.Code)
	assert.Equal(t, "Mystery", vErr.Ref)
}

func TestCashFlowStatement_NegativeClosingAllowed(t *testing.T) {
	// An overdraft is a valid computation result, not a validation failure.
	result, err := disclosure.CashFlowStatement(1000, []disclosure.CashFlowItem{
		{Label: "Big payment", Section: disclosure.SectionOperating, AmountMinor: -5000},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-4000), result.Value.ClosingCashMinor)
}
