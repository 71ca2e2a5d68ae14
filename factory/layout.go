/*
Package factory provides YAML to Go statement-layout conversion.

PURPOSE:
  Converts YAML layout definitions into statement.Layout and LineSpec
  values. This enables layout configuration without code changes - an
  accountant can define statement structure in YAML, and the factory
  creates the proper Go structs.

WHY YAML?
  - Non-developers can modify layouts
  - Version control for layout definitions
  - Seed files for demo and test databases

YAML SCHEMA:
  id: income-statement
  name: Income Statement
  kind: income_statement
  lines:
    - line: 10
      label: Revenue
      type: header
    - line: 20
      label: Sales revenue
      type: detail
      indent: 1
      ranges: [{from: "4000", to: "4999"}]
      sign: reversed
    - line: 90
      label: Gross profit
      type: subtotal
      formula: "L20 - L40"
      bold: true
      show_if_zero: true

VALIDATION:
  ParseLayout enforces the invariants the renderer relies on:
  - line numbers unique
  - detail lines carry at least one account range
  - subtotal/total lines carry a formula
  - formulas reference only lower-numbered lines (no forward refs)

SEE ALSO:
  - statement/types.go: The LineSpec invariants
  - layouts.go: Built-in layout definitions
*/
package factory

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/statement"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// LayoutYAML is the YAML representation of a statement layout.
type LayoutYAML struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Kind  string     `yaml:"kind"`
	Lines []LineYAML `yaml:"lines"`
}

// LineYAML represents one layout line.
type LineYAML struct {
	Line       int         `yaml:"line"`
	Label      string      `yaml:"label"`
	Type       string      `yaml:"type"`
	Indent     int         `yaml:"indent,omitempty"`
	Parent     *int        `yaml:"parent,omitempty"`
	Ranges     []RangeYAML `yaml:"ranges,omitempty"`
	Sign       string      `yaml:"sign,omitempty"`
	Formula    string      `yaml:"formula,omitempty"`
	Bold       bool        `yaml:"bold,omitempty"`
	ShowIfZero bool        `yaml:"show_if_zero,omitempty"`
}

// RangeYAML is an inclusive account-code range.
type RangeYAML struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// =============================================================================
// PARSING
// =============================================================================

var formulaRef = regexp.MustCompile(`L(\d+)`)

// ParseLayout parses and validates a YAML layout definition for an
// organization. Violated invariants surface as validation failures.
func ParseLayout(org fincore.OrgID, raw []byte) (statement.Layout, []statement.LineSpec, error) {
	var def LayoutYAML
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return statement.Layout{}, nil, fmt.Errorf("parse layout yaml: %w", err)
	}

	if def.ID == "" || def.Name == "" {
		return statement.Layout{}, nil, &fincore.ValidationError{
			Code:    "incomplete_layout",
			Message: "layout requires id and name",
			Ref:     def.ID,
		}
	}

	layout := statement.Layout{ID: def.ID, OrgID: org, Name: def.Name, Kind: def.Kind}

	seen := make(map[int]bool, len(def.Lines))
	specs := make([]statement.LineSpec, 0, len(def.Lines))
	for _, l := range def.Lines {
		if seen[l.Line] {
			return statement.Layout{}, nil, &fincore.ValidationError{
				Code:    "duplicate_line_number",
				Message: fmt.Sprintf("line number %d appears twice", l.Line),
				Ref:     def.ID,
			}
		}
		seen[l.Line] = true

		spec, err := toSpec(def.ID, l)
		if err != nil {
			return statement.Layout{}, nil, err
		}
		specs = append(specs, spec)
	}

	if err := checkFormulaRefs(def.ID, specs); err != nil {
		return statement.Layout{}, nil, err
	}

	return layout, specs, nil
}

func toSpec(layoutID string, l LineYAML) (statement.LineSpec, error) {
	lineType := statement.LineType(l.Type)
	switch lineType {
	case statement.LineHeader, statement.LineDetail, statement.LineSubtotal,
		statement.LineTotal, statement.LineBlank:
	default:
		return statement.LineSpec{}, &fincore.ValidationError{
			Code:    "unknown_line_type",
			Message: fmt.Sprintf("line %d has unknown type %q", l.Line, l.Type),
			Ref:     layoutID,
		}
	}

	if lineType == statement.LineDetail && len(l.Ranges) == 0 {
		return statement.LineSpec{}, &fincore.ValidationError{
			Code:    "detail_without_ranges",
			Message: fmt.Sprintf("detail line %d needs at least one account range", l.Line),
			Ref:     layoutID,
		}
	}
	if (lineType == statement.LineSubtotal || lineType == statement.LineTotal) && l.Formula == "" {
		return statement.LineSpec{}, &fincore.ValidationError{
			Code:    "computed_without_formula",
			Message: fmt.Sprintf("%s line %d needs a formula", lineType, l.Line),
			Ref:     layoutID,
		}
	}

	sign := statement.SignNormal
	if l.Sign == string(statement.SignReversed) {
		sign = statement.SignReversed
	}

	var ranges []statement.AccountRange
	for _, r := range l.Ranges {
		ranges = append(ranges, statement.AccountRange{From: r.From, To: r.To})
	}

	return statement.LineSpec{
		LineNumber:   l.Line,
		Label:        l.Label,
		Type:         lineType,
		IndentLevel:  l.Indent,
		ParentLineID: l.Parent,
		Ranges:       ranges,
		Sign:         sign,
		Formula:      l.Formula,
		Bold:         l.Bold,
		ShowIfZero:   l.ShowIfZero,
	}, nil
}

// checkFormulaRefs rejects forward references at definition time. The
// renderer would silently read 0 for them; catching the mistake here
// keeps that leniency out of authored layouts.
func checkFormulaRefs(layoutID string, specs []statement.LineSpec) error {
	for _, spec := range specs {
		if spec.Formula == "" {
			continue
		}
		for _, m := range formulaRef.FindAllStringSubmatch(spec.Formula, -1) {
			ref, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if ref >= spec.LineNumber {
				return &fincore.ValidationError{
					Code:    "forward_reference",
					Message: fmt.Sprintf("line %d formula references L%d, which is not computed yet", spec.LineNumber, ref),
					Ref:     layoutID,
				}
			}
		}
	}
	return nil
}
