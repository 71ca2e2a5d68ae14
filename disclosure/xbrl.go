/*
xbrl.go - Taxonomy element tagging for statement lines

PURPOSE:
  Maps each statement line label to a taxonomy element for electronic
  filing. Match order per line:

    1. Explicit manual override (label -> element id)
    2. Exact case-insensitive label match against the taxonomy
    3. Substring containment, either direction, case-insensitive
    4. "unmapped"

  Coverage is the percentage of lines with a mapping; the filing is
  ready only when nothing is left unmapped.
*/
package disclosure

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// XBRL TAGGING
// =============================================================================

// TaxonomyElement is one element of the filing taxonomy.
type TaxonomyElement struct {
	ElementID string `json:"element_id"`
	Label     string `json:"label"`
}

// TagMethod records how a line was mapped.
type TagMethod string

const (
	TagOverride TagMethod = "override"
	TagExact    TagMethod = "exact"
	TagFuzzy    TagMethod = "fuzzy"
	TagUnmapped TagMethod = "unmapped"
)

// LineTag is the mapping decision for one statement line.
type LineTag struct {
	Label     string    `json:"label"`
	ElementID string    `json:"element_id,omitempty"`
	Method    TagMethod `json:"method"`
}

// TaggingResult is the full tagging computation.
type TaggingResult struct {
	Tags          []LineTag       `json:"tags"`
	CoveragePct   decimal.Decimal `json:"coverage_pct"`
	IsFilingReady bool            `json:"is_filing_ready"`
}

type taggingInputs struct {
	Labels    []string          `json:"labels"`
	Taxonomy  []TaxonomyElement `json:"taxonomy"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

// TagXBRL maps every line label to a taxonomy element. Overrides key on
// the exact line label. An empty label list is a validation failure.
func TagXBRL(labels []string, taxonomy []TaxonomyElement, overrides map[string]string) (fincore.Result[TaggingResult], error) {
	if len(labels) == 0 {
		return fincore.Result[TaggingResult]{}, &fincore.ValidationError{
			Code:    "empty_lines",
			Message: "tagging requires at least one statement line",
		}
	}

	result := TaggingResult{Tags: make([]LineTag, 0, len(labels))}

	mapped := 0
	for _, label := range labels {
		tag := tagOne(label, taxonomy, overrides)
		if tag.Method != TagUnmapped {
			mapped++
		}
		result.Tags = append(result.Tags, tag)
	}

	result.CoveragePct = decimal.NewFromInt(int64(mapped)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(labels)))).
		Round(2)
	result.IsFilingReady = mapped == len(labels)

	return fincore.NewResult(
		result,
		taggingInputs{Labels: labels, Taxonomy: taxonomy, Overrides: overrides},
		fmt.Sprintf("mapped %d of %d lines (%s%% coverage), filing ready: %t",
			mapped, len(labels), result.CoveragePct, result.IsFilingReady),
	), nil
}

func tagOne(label string, taxonomy []TaxonomyElement, overrides map[string]string) LineTag {
	if elementID, ok := overrides[label]; ok {
		return LineTag{Label: label, ElementID: elementID, Method: TagOverride}
	}

	folded := strings.ToLower(strings.TrimSpace(label))

	for _, el := range taxonomy {
		if strings.ToLower(strings.TrimSpace(el.Label)) == folded {
			return LineTag{Label: label, ElementID: el.ElementID, Method: TagExact}
		}
	}

	for _, el := range taxonomy {
		elFolded := strings.ToLower(strings.TrimSpace(el.Label))
		if elFolded == "" || folded == "" {
			continue
		}
		if strings.Contains(folded, elFolded) || strings.Contains(elFolded, folded) {
			return LineTag{Label: label, ElementID: el.ElementID, Method: TagFuzzy}
		}
	}

	return LineTag{Label: label, Method: TagUnmapped}
}
