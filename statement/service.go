/*
service.go - Store-backed statement rendering

PURPOSE:
  Orchestrates a statement render: load layout -> load lines -> load
  balances -> Render. The reads run sequentially; line counts per layout
  are small, so there is no parallel fan-out.

OUTCOME:
  Rendering implies no state change, so the service always returns a
  Read outcome. Validation failures and store errors propagate untouched.
*/
package statement

import (
	"context"
	"fmt"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// SERVICE
// =============================================================================

// Service renders stored statement layouts.
type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

// RenderedStatement is the read payload returned by RenderStatement.
type RenderedStatement struct {
	Layout Layout                         `json:"layout"`
	Period string                         `json:"period"`
	Result fincore.Result[[]RenderedLine] `json:"result"`
}

// RenderStatement loads the layout's rows and renders them against the
// organization's balances for the period.
func (s *Service) RenderStatement(ctx context.Context, inv fincore.Invocation, layoutID, period string) (fincore.Outcome, error) {
	layout, err := s.Store.Layout(ctx, inv.OrgID, layoutID)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", layoutID, err)
	}

	lines, err := s.Store.Lines(ctx, inv.OrgID, layoutID)
	if err != nil {
		return nil, fmt.Errorf("load lines for layout %s: %w", layoutID, err)
	}

	balances, err := s.Store.Balances(ctx, inv.OrgID, period)
	if err != nil {
		return nil, fmt.Errorf("load balances for period %s: %w", period, err)
	}

	result := Render(lines, balances)
	return fincore.Read{Data: RenderedStatement{
		Layout: layout,
		Period: period,
		Result: result,
	}}, nil
}
