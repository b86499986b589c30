package stats

import (
	"context"

	"github.com/mercaderia/pricebook/core"
)

// Prune drops stats for codes that are no longer in the catalog, keeping
// the persisted store aligned with catalog reloads. Returns the number of
// codes removed.
func (t *Tracker) Prune(ctx context.Context, catalog *core.Catalog) (int, error) {
	if catalog == nil {
		return 0, nil
	}

	var stale []string
	for code := range t.stats {
		if _, ok := catalog.Get(code); !ok {
			stale = append(stale, code)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	if err := t.repo.DeleteStats(ctx, stale...); err != nil {
		return 0, err
	}
	for _, code := range stale {
		delete(t.stats, code)
	}
	t.logger.Info("pruned stale search stats", "removed", len(stale))
	return len(stale), nil
}
