/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.
  The engine itself has no wire format; this layer chooses JSON and maps
  Domain Outcomes onto it.

ROUTER: chi
  Lightweight, context-based, RESTful route patterns.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for admin frontends

ROUTE GROUPS:
  /api/orgs/{orgID}/statements/*     Stored-layout rendering
  /api/orgs/{orgID}/intercompany/*   Reconciliation runs
  /api/calc/*                        Pure calculators over request payloads

SECURITY NOTE:
  No authentication middleware. The invocation context is taken from
  headers and assumed validated upstream; see fincore/invocation.go.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Actor-ID", "X-Actor-Roles"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/orgs/{orgID}", func(r chi.Router) {
			// Statement rendering
			r.Get("/statements/{layoutID}/render", h.RenderStatement)

			// Intercompany reconciliation
			r.Post("/intercompany/reconcile", h.Reconcile)
		})

		// Pure calculators: payload in, Result out, no storage touched
		r.Route("/calc", func(r chi.Router) {
			r.Post("/segments", h.Segments)
			r.Post("/eps", h.EPS)
			r.Post("/cashflow", h.CashFlow)
			r.Post("/xbrl", h.XBRL)
			r.Post("/related-parties", h.RelatedParties)
			r.Post("/policy-notes", h.PolicyNotes)
		})
	})

	return r
}
