package disclosure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/finance-engine/disclosure"
	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// RELATED PARTY GROUPING
// =============================================================================

func TestRelatedParties_GroupsByPartyAndRelationship(t *testing.T) {
	txs := []disclosure.RelatedPartyTransaction{
		{PartyID: "p1", PartyName: "Holding Co", Relationship: "parent", Nature: "management_fee", AmountMinor: 10000},
		{PartyID: "p1", PartyName: "Holding Co", Relationship: "parent", Nature: "loan", AmountMinor: 5000},
		{PartyID: "p1", PartyName: "Holding Co", Relationship: "lender", Nature: "loan", AmountMinor: 20000},
		{PartyID: "p2", PartyName: "Sister Co", Relationship: "affiliate", Nature: "sale", AmountMinor: 3000},
	}

	result := disclosure.RelatedParties(txs)
	groups := result.Value
	require.Len(t, groups, 3)

	// Ordered by party id, then relationship.
	assert.Equal(t, "p1", groups[0].PartyID)
	assert.Equal(t, "lender", groups[0].Relationship)
	assert.Equal(t, int64(20000), groups[0].TotalAmountMinor)

	assert.Equal(t, "parent", groups[1].Relationship)
	assert.Equal(t, 2, groups[1].TransactionCount)
	assert.Equal(t, int64(15000), groups[1].TotalAmountMinor)

	assert.Equal(t, "p2", groups[2].PartyID)
}

func TestRelatedParties_EmptyInput_EmptyGroups(t *testing.T) {
	// No related-party activity is a valid disclosure, not an error.
	result := disclosure.RelatedParties(nil)
	assert.Empty(t, result.Value)
	assert.NotEmpty(t, result.Explanation)
}

// =============================================================================
// ACCOUNTING POLICY NOTES
// =============================================================================

func TestPolicyNotes_NumbersInTopicOrder(t *testing.T) {
	header := disclosure.NotesHeader{ReportingEntityName: "Warp Industries Bhd", FiscalYear: 2025}
	policies := []disclosure.PolicyText{
		{Topic: "revenue_recognition", Text: "Revenue is recognised when control transfers."},
		{Topic: "leases", Text: "Right-of-use assets are depreciated straight-line."},
	}

	result, err := disclosure.PolicyNotes(header, policies)
	require.NoError(t, err)

	notes := result.Value.Notes
	require.Len(t, notes, 2)
	assert.Equal(t, 1, notes[0].NoteNumber)
	assert.Equal(t, "leases", notes[0].Topic)
	assert.Equal(t, 2, notes[1].NoteNumber)
	assert.Equal(t, "revenue_recognition", notes[1].Topic)
}

func TestPolicyNotes_MissingEntityName_ValidationFailure(t *testing.T) {
	_, err := disclosure.PolicyNotes(disclosure.NotesHeader{FiscalYear: 2025}, nil)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "missing_entity_name", vErr.Code)
}

func TestPolicyNotes_MissingFiscalYear_ValidationFailure(t *testing.T) {
	_, err := disclosure.PolicyNotes(disclosure.NotesHeader{ReportingEntityName: "Warp"}, nil)
	require.Error(t, err)

	var vErr *fincore.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "missing_fiscal_year", vErr.Code)
}
