/*
handlers.go - HTTP handler implementations

PURPOSE:
  Connects the HTTP surface to the services and calculators. Handlers do
  three things only: decode the request, invoke the engine, encode the
  outcome. All business decisions live below this layer.

ERROR MAPPING:
  fincore validation failures -> 422 (the request was understood and
  rejected; never degraded to an empty outcome)
  fincore.ErrNotFound         -> 404
  anything else               -> 500

INVOCATION:
  Organization comes from the URL; actor identity from X-Actor-ID and
  X-Actor-Roles headers. The engine assumes these were validated upstream.

SEE ALSO:
  - server.go: Route wiring
  - dto.go: Request shapes
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/warp/finance-engine/disclosure"
	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/intercompany"
	"github.com/warp/finance-engine/statement"
)

// Handler holds the services the HTTP surface exposes.
type Handler struct {
	Statements     *statement.Service
	Reconciliation *intercompany.Service
}

// NewHandler wires the handler's dependencies.
func NewHandler(statements *statement.Service, reconciliation *intercompany.Service) *Handler {
	return &Handler{Statements: statements, Reconciliation: reconciliation}
}

// =============================================================================
// STORE-BACKED SERVICES
// =============================================================================

// RenderStatement renders a stored layout against a period's balances.
// GET /api/orgs/{orgID}/statements/{layoutID}/render?period=2025-12
func (h *Handler) RenderStatement(w http.ResponseWriter, r *http.Request) {
	inv := invocationFrom(r)
	layoutID := chi.URLParam(r, "layoutID")
	period := r.URL.Query().Get("period")
	if period == "" {
		writeError(w, http.StatusBadRequest, "period query parameter is required")
		return
	}

	outcome, err := h.Statements.RenderStatement(r.Context(), inv, layoutID, period)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// Reconcile runs an intercompany reconciliation.
// POST /api/orgs/{orgID}/intercompany/reconcile
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	inv := invocationFrom(r)

	var req ReconcileRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Period == "" {
		writeError(w, http.StatusBadRequest, "period is required")
		return
	}

	outcome, err := h.Reconciliation.Reconcile(r.Context(), inv, req.Period, req.Options())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// =============================================================================
// PURE CALCULATORS
// =============================================================================

// Segments computes segment reportability. POST /api/calc/segments
func (h *Handler) Segments(w http.ResponseWriter, r *http.Request) {
	var req SegmentsRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := disclosure.SegmentReportability(req.Segments)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// EPS computes basic and diluted earnings per share. POST /api/calc/eps
func (h *Handler) EPS(w http.ResponseWriter, r *http.Request) {
	var req EPSRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := disclosure.EarningsPerShare(req.EPSInput)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CashFlow sections cash-flow items. POST /api/calc/cashflow
func (h *Handler) CashFlow(w http.ResponseWriter, r *http.Request) {
	var req CashFlowRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := disclosure.CashFlowStatement(req.OpeningCashMinor, req.Items)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// XBRL tags statement lines with taxonomy elements. POST /api/calc/xbrl
func (h *Handler) XBRL(w http.ResponseWriter, r *http.Request) {
	var req XBRLRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := disclosure.TagXBRL(req.Labels, req.Taxonomy, req.Overrides)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RelatedParties groups related-party transactions.
// POST /api/calc/related-parties
func (h *Handler) RelatedParties(w http.ResponseWriter, r *http.Request) {
	var req RelatedPartiesRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, disclosure.RelatedParties(req.Transactions))
}

// PolicyNotes assembles accounting-policy notes. POST /api/calc/policy-notes
func (h *Handler) PolicyNotes(w http.ResponseWriter, r *http.Request) {
	var req PolicyNotesRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := disclosure.PolicyNotes(req.Header, req.Policies)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// =============================================================================
// HELPERS
// =============================================================================

func invocationFrom(r *http.Request) fincore.Invocation {
	inv := fincore.Invocation{
		OrgID:   fincore.OrgID(chi.URLParam(r, "orgID")),
		ActorID: r.Header.Get("X-Actor-ID"),
	}
	if roles := r.Header.Get("X-Actor-Roles"); roles != "" {
		for _, role := range strings.Split(roles, ",") {
			inv.Roles = append(inv.Roles, strings.TrimSpace(role))
		}
	}
	return inv
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeEngineError(w http.ResponseWriter, err error) {
	var vErr *fincore.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: vErr.Message,
			Code:  vErr.Code,
			Ref:   vErr.Ref,
		})
	case fincore.IsValidation(err):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case fincore.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
