/*
layouts.go - Built-in layout definitions

PURPOSE:
  Ships two ready-made layouts (income statement, balance sheet) used by
  database seeding and tests. Defined in the same YAML dialect an
  operator would write, so the built-ins double as documentation.
*/
package factory

import (
	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/statement"
)

// IncomeStatementYAML is a compact income statement over a conventional
// four-digit chart of accounts (4xxx revenue, 5xxx cost of sales,
// 6xxx operating expenses).
const IncomeStatementYAML = `
id: income-statement
name: Income Statement
kind: income_statement
lines:
  - {line: 10, label: Revenue, type: header, bold: true}
  - line: 20
    label: Sales revenue
    type: detail
    indent: 1
    parent: 10
    ranges: [{from: "4000", to: "4999"}]
    sign: reversed
  - {line: 30, label: "", type: blank}
  - {line: 40, label: Cost of sales, type: header, bold: true}
  - line: 50
    label: Cost of goods sold
    type: detail
    indent: 1
    parent: 40
    ranges: [{from: "5000", to: "5999"}]
  - line: 60
    label: Gross profit
    type: subtotal
    formula: "L20 - L50"
    bold: true
    show_if_zero: true
  - {line: 70, label: Operating expenses, type: header, bold: true}
  - line: 80
    label: Administrative expenses
    type: detail
    indent: 1
    parent: 70
    ranges: [{from: "6000", to: "6499"}]
  - line: 90
    label: Selling expenses
    type: detail
    indent: 1
    parent: 70
    ranges: [{from: "6500", to: "6999"}]
  - line: 100
    label: Operating profit
    type: total
    formula: "L60 - L80 - L90"
    bold: true
    show_if_zero: true
`

// BalanceSheetYAML is a compact balance sheet (1xxx assets, 2xxx
// liabilities, 3xxx equity; credit-balance sections reversed).
const BalanceSheetYAML = `
id: balance-sheet
name: Balance Sheet
kind: balance_sheet
lines:
  - {line: 10, label: Assets, type: header, bold: true}
  - line: 20
    label: Current assets
    type: detail
    indent: 1
    parent: 10
    ranges: [{from: "1000", to: "1499"}]
  - line: 30
    label: Non-current assets
    type: detail
    indent: 1
    parent: 10
    ranges: [{from: "1500", to: "1999"}]
  - line: 40
    label: Total assets
    type: total
    formula: "L20 + L30"
    bold: true
    show_if_zero: true
  - {line: 50, label: "", type: blank}
  - {line: 60, label: Liabilities and equity, type: header, bold: true}
  - line: 70
    label: Liabilities
    type: detail
    indent: 1
    parent: 60
    ranges: [{from: "2000", to: "2999"}]
    sign: reversed
  - line: 80
    label: Equity
    type: detail
    indent: 1
    parent: 60
    ranges: [{from: "3000", to: "3999"}]
    sign: reversed
  - line: 90
    label: Total liabilities and equity
    type: total
    formula: "L70 + L80"
    bold: true
    show_if_zero: true
`

// BuiltinLayouts parses every shipped layout for an organization.
func BuiltinLayouts(org fincore.OrgID) (map[statement.Layout][]statement.LineSpec, error) {
	out := make(map[statement.Layout][]statement.LineSpec, 2)
	for _, raw := range []string{IncomeStatementYAML, BalanceSheetYAML} {
		layout, lines, err := ParseLayout(org, []byte(raw))
		if err != nil {
			return nil, err
		}
		out[layout] = lines
	}
	return out, nil
}
