package storage

import (
	"context"

	"github.com/mercaderia/pricebook/core"
)

// StatsRepository persists per-code search statistics and the
// recent-searches list.
type StatsRepository interface {
	// GetStats retrieves stats for a product code.
	// Returns ok=false when no stats exist for the code.
	GetStats(ctx context.Context, code string) (core.SearchStats, bool, error)

	// PutStats stores stats for a product code, replacing any previous value.
	// Returns a validation error for stats violating domain rules.
	PutStats(ctx context.Context, code string, stats core.SearchStats) error

	// DeleteStats removes stats for one or more product codes.
	// Unknown codes are ignored.
	DeleteStats(ctx context.Context, codes ...string) error

	// AllStats retrieves every stored (code, stats) pair. Malformed entries
	// are skipped, not surfaced.
	AllStats(ctx context.Context) (map[string]core.SearchStats, error)

	// RecentSearches retrieves the persisted recent-search terms, most
	// recent first. Missing or malformed data yields an empty list.
	RecentSearches(ctx context.Context) ([]string, error)

	// PutRecentSearches replaces the persisted recent-search terms.
	PutRecentSearches(ctx context.Context, terms []string) error

	// Close closes the repository and releases resources.
	Close() error
}

// DeviceRepository persists the locally generated device identifier used by
// the access gate.
type DeviceRepository interface {
	// DeviceID retrieves the stored device identifier.
	// Returns ok=false when none has been stored yet.
	DeviceID(ctx context.Context) (string, bool, error)

	// PutDeviceID stores the device identifier, replacing any previous one.
	PutDeviceID(ctx context.Context, id string) error

	// Close closes the repository and releases resources.
	Close() error
}
