package refresher

import (
	"context"
	"fmt"
	"log/slog"

	"burpwatch/internal/clock"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"
)

// HistoryRecorder stores every running-state transition and keeps the table
// at most keep rows long.
type HistoryRecorder struct {
	repo  interfaces.StatusEventRepository
	scope func() models.Scope
	keep  int
	clock clock.Clock
}

func NewHistoryRecorder(repo interfaces.StatusEventRepository, scope func() models.Scope, keep int, clk clock.Clock) *HistoryRecorder {
	if clk == nil {
		clk = clock.Real()
	}
	return &HistoryRecorder{
		repo:  repo,
		scope: scope,
		keep:  keep,
		clock: clk,
	}
}

// Record has the poller's subscriber signature.
func (h *HistoryRecorder) Record(ctx context.Context, state models.RunningState) error {
	scope := models.Scope{Kind: models.ScopeGlobal}
	if h.scope != nil {
		scope = h.scope()
	}

	event := models.NewStatusEvent(scope, state, h.clock.Now())
	if err := h.repo.CreateStatusEvent(event); err != nil {
		return fmt.Errorf("failed to record status event: %w", err)
	}

	if h.keep > 0 {
		pruned, err := h.repo.PruneStatusEvents(h.keep)
		if err != nil {
			return fmt.Errorf("failed to prune status events: %w", err)
		}
		if pruned > 0 {
			slog.Debug("pruned status history", "removed", pruned, "keep", h.keep)
		}
	}

	return nil
}
