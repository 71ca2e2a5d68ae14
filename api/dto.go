/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - Responses reuse the domain's JSON-tagged types (fincore.Result,
    fincore.Outcome) directly; outcomes serialize with a "kind"
    discriminator via their MarshalJSON.

VALIDATION:
  Structural validation (shape, required fields) happens in the
  calculators, not here. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/finance-engine/disclosure"
	"github.com/warp/finance-engine/intercompany"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ReconcileRequest triggers an intercompany reconciliation run.
type ReconcileRequest struct {
	Period         string `json:"period"`
	ProposeMirrors bool   `json:"propose_mirrors,omitempty"`
	Eliminate      bool   `json:"eliminate,omitempty"`
}

// Options converts the request into service options.
func (r ReconcileRequest) Options() intercompany.ReconcileOptions {
	return intercompany.ReconcileOptions{
		ProposeMirrors: r.ProposeMirrors,
		Eliminate:      r.Eliminate,
	}
}

// SegmentsRequest carries segment figures for reportability analysis.
type SegmentsRequest struct {
	Segments []disclosure.Segment `json:"segments"`
}

// EPSRequest carries the earnings-per-share inputs.
type EPSRequest struct {
	disclosure.EPSInput
}

// CashFlowRequest carries opening cash and line items.
type CashFlowRequest struct {
	OpeningCashMinor int64                     `json:"opening_cash_minor"`
	Items            []disclosure.CashFlowItem `json:"items"`
}

// XBRLRequest carries labels, taxonomy and manual overrides.
type XBRLRequest struct {
	Labels    []string                     `json:"labels"`
	Taxonomy  []disclosure.TaxonomyElement `json:"taxonomy"`
	Overrides map[string]string            `json:"overrides,omitempty"`
}

// RelatedPartiesRequest carries the transactions to group.
type RelatedPartiesRequest struct {
	Transactions []disclosure.RelatedPartyTransaction `json:"transactions"`
}

// PolicyNotesRequest carries the notes header and policy texts.
type PolicyNotesRequest struct {
	Header   disclosure.NotesHeader  `json:"header"`
	Policies []disclosure.PolicyText `json:"policies"`
}

// =============================================================================
// ERROR RESPONSE
// =============================================================================

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Ref   string `json:"ref,omitempty"`
}
