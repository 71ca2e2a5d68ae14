package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/factory"
	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/statement"
)

// =============================================================================
// LAYOUT PARSING
// =============================================================================

func TestParseLayout_Builtins(t *testing.T) {
	layouts, err := factory.BuiltinLayouts("org-1")
	require.NoError(t, err)
	require.Len(t, layouts, 2)

	for layout, lines := range layouts {
		assert.Equal(t, fincore.OrgID("org-1"), layout.OrgID)
		assert.NotEmpty(t, lines)
	}
}

func TestParseLayout_DetailWithoutRanges_Rejected(t *testing.T) {
	raw := []byte(`
id: broken
name: Broken
lines:
  - {line: 10, label: Naked detail, type: detail}
`)
	_, _, err := factory.ParseLayout("org-1", raw)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "detail_without_ranges", vErr.Code)
}

func TestParseLayout_SubtotalWithoutFormula_Rejected(t *testing.T) {
	raw := []byte(`
id: broken
name: Broken
lines:
  - {line: 10, label: Empty subtotal, type: subtotal}
`)
	_, _, err := factory.ParseLayout("org-1", raw)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "computed_without_formula", vErr.Code)
}

func TestParseLayout_DuplicateLineNumber_Rejected(t *testing.T) {
	raw := []byte(`
id: broken
name: Broken
lines:
  - {line: 10, label: A, type: header}
  - {line: 10, label: B, type: header}
`)
	_, _, err := factory.ParseLayout("org-1", raw)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "duplicate_line_number", vErr.Code)
}

func TestParseLayout_ForwardReference_Rejected(t *testing.T) {
	// The renderer would silently read 0 for a forward reference; the
	// factory refuses to author such a layout in the first place.
	raw := []byte(`
id: broken
name: Broken
lines:
  - line: 10
    label: Premature
    type: subtotal
    formula: "L20"
  - line: 20
    label: Revenue
    type: detail
    ranges: [{from: "4000", to: "4999"}]
`)
	_, _, err := factory.ParseLayout("org-1", raw)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "forward_reference", vErr.Code)
}

func TestParseLayout_RoundTripsThroughRenderer(t *testing.T) {
	_, lines, err := factory.ParseLayout("org-1", []byte(factory.BalanceSheetYAML))
	require.NoError(t, err)

	result := statement.Render(lines, []statement.AccountBalance{
		{AccountCode: "1100", BalanceMinor: 400000},  // current assets
		{AccountCode: "1700", BalanceMinor: 600000},  // non-current assets
		{AccountCode: "2100", BalanceMinor: -700000}, // liabilities, credit
		{AccountCode: "3100", BalanceMinor: -300000}, // equity, credit
	})

	byLine := make(map[int]statement.RenderedLine)
	for _, l := range result.Value {
		byLine[l.LineNumber] = l
	}
	assert.Equal(t, int64(1000000), byLine[40].AmountMinor, "total assets")
	assert.Equal(t, int64(1000000), byLine[90].AmountMinor, "total liabilities and equity")
}
