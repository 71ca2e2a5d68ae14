/*
cashflow.go - Cash-flow statement sectioning

PURPOSE:
  Sums line items into the three fixed cash-flow sections (operating,
  investing, financing). Net change is the sum of the three; closing
  cash is opening plus net change.
*/
package disclosure

import (
	"fmt"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// CASH FLOW STATEMENT
// =============================================================================

// CashFlowSection is one of the three fixed statement sections.
type CashFlowSection string

const (
	SectionOperating CashFlowSection = "operating"
	SectionInvesting CashFlowSection = "investing"
	SectionFinancing CashFlowSection = "financing"
)

// CashFlowItem is a single line item, signed minor units (outflows negative).
type CashFlowItem struct {
	Label       string          `json:"label"`
	Section     CashFlowSection `json:"section"`
	AmountMinor int64           `json:"amount_minor"`
}

// CashFlowStatementResult is the sectioned computation.
type CashFlowStatementResult struct {
	OperatingMinor   int64 `json:"operating_minor"`
	InvestingMinor   int64 `json:"investing_minor"`
	FinancingMinor   int64 `json:"financing_minor"`
	NetChangeMinor   int64 `json:"net_change_minor"`
	OpeningCashMinor int64 `json:"opening_cash_minor"`
	ClosingCashMinor int64 `json:"closing_cash_minor"`
}

type cashFlowInputs struct {
	OpeningCashMinor int64          `json:"opening_cash_minor"`
	Items            []CashFlowItem `json:"items"`
}

// CashFlowStatement sections the items and rolls cash forward. An empty
// item list is a validation failure; so is an item naming an unknown
// section, since silently dropping it would misstate closing cash.
func CashFlowStatement(openingCashMinor int64, items []CashFlowItem) (fincore.Result[CashFlowStatementResult], error) {
	if len(items) == 0 {
		return fincore.Result[CashFlowStatementResult]{}, &fincore.ValidationError{
			Code:    "empty_items",
			Message: "cash flow statement requires at least one line item",
		}
	}

	var res CashFlowStatementResult
	res.OpeningCashMinor = openingCashMinor

	for _, item := range items {
		switch item.Section {
		case SectionOperating:
			res.OperatingMinor += item.AmountMinor
		case SectionInvesting:
			res.InvestingMinor += item.AmountMinor
		case SectionFinancing:
			res.FinancingMinor += item.AmountMinor
		default:
			return fincore.Result[CashFlowStatementResult]{}, &fincore.ValidationError{
				Code:    "unknown_section",
				Message: fmt.Sprintf("unknown cash flow section %q", item.Section),
				Ref:     item.Label,
			}
		}
	}

	res.NetChangeMinor = res.OperatingMinor + res.InvestingMinor + res.FinancingMinor
	res.ClosingCashMinor = openingCashMinor + res.NetChangeMinor

	return fincore.NewResult(
		res,
		cashFlowInputs{OpeningCashMinor: openingCashMinor, Items: items},
		fmt.Sprintf("operating %d, investing %d, financing %d; net change %d moves cash %d -> %d",
			res.OperatingMinor, res.InvestingMinor, res.FinancingMinor,
			res.NetChangeMinor, res.OpeningCashMinor, res.ClosingCashMinor),
	), nil
}
