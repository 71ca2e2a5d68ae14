/*
relatedparty.go - Related-party transaction grouping

PURPOSE:
  Groups related-party transactions by party and relationship and reports
  count and summed amount per group. Pure aggregation; included in the
  disclosure package as a consumer of the shared Result contract rather
  than as independently hard logic.
*/
package disclosure

import (
	"fmt"
	"sort"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// RELATED PARTY GROUPING
// =============================================================================

// RelatedPartyTransaction is one disclosed transaction with a related party.
type RelatedPartyTransaction struct {
	PartyID      string `json:"party_id"`
	PartyName    string `json:"party_name"`
	Relationship string `json:"relationship"` // "parent", "subsidiary", "key_management", ...
	Nature       string `json:"nature"`       // "sale", "loan", "management_fee", ...
	AmountMinor  int64  `json:"amount_minor"`
}

// RelatedPartyGroup aggregates one party+relationship combination.
type RelatedPartyGroup struct {
	PartyID          string `json:"party_id"`
	PartyName        string `json:"party_name"`
	Relationship     string `json:"relationship"`
	TransactionCount int    `json:"transaction_count"`
	TotalAmountMinor int64  `json:"total_amount_minor"`
}

type relatedPartyInputs struct {
	Transactions []RelatedPartyTransaction `json:"transactions"`
}

// RelatedParties groups the transactions by party id and relationship.
// Groups are ordered by party id then relationship so output is
// deterministic. An empty input is not an error: a period can genuinely
// have no related-party activity, and the disclosure then says so.
func RelatedParties(transactions []RelatedPartyTransaction) fincore.Result[[]RelatedPartyGroup] {
	type groupKey struct {
		PartyID      string
		Relationship string
	}

	groups := make(map[groupKey]*RelatedPartyGroup)
	for _, tx := range transactions {
		k := groupKey{PartyID: tx.PartyID, Relationship: tx.Relationship}
		g, ok := groups[k]
		if !ok {
			g = &RelatedPartyGroup{
				PartyID:      tx.PartyID,
				PartyName:    tx.PartyName,
				Relationship: tx.Relationship,
			}
			groups[k] = g
		}
		g.TransactionCount++
		g.TotalAmountMinor += tx.AmountMinor
	}

	out := make([]RelatedPartyGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PartyID != out[j].PartyID {
			return out[i].PartyID < out[j].PartyID
		}
		return out[i].Relationship < out[j].Relationship
	})

	return fincore.NewResult(
		out,
		relatedPartyInputs{Transactions: transactions},
		fmt.Sprintf("grouped %d transactions into %d party/relationship groups", len(transactions), len(out)),
	)
}
