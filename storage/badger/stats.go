package badger

import (
	"context"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/mercaderia/pricebook/core"
	"github.com/mercaderia/pricebook/storage"
)

// StatsRepository implements storage.StatsRepository for BadgerDB.
//
// Malformed stored values degrade to empty defaults with a warn log; a bad
// blob in the store must never make search stats unusable.
type StatsRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.StatsRepository = (*StatsRepository)(nil)

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(backend *Backend) (*StatsRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &StatsRepository{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// Close releases repository resources. The backend itself is closed by its
// owner.
func (r *StatsRepository) Close() error {
	return nil
}

// GetStats retrieves stats for a product code.
func (r *StatsRepository) GetStats(ctx context.Context, code string) (core.SearchStats, bool, error) {
	var (
		stats core.SearchStats
		found bool
	)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeStatsKey(code))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, decodeErr := storage.UnmarshalSearchStats(val)
			if decodeErr != nil {
				r.logger.Warn("discarding malformed stats entry", "code", code, "err", decodeErr)
				return nil
			}
			stats = decoded
			found = true
			return nil
		})
	}, false)
	if err != nil {
		return core.SearchStats{}, false, err
	}
	return stats, found, nil
}

// PutStats stores stats for a product code, replacing any previous value.
func (r *StatsRepository) PutStats(ctx context.Context, code string, stats core.SearchStats) error {
	if code == "" {
		return core.ErrEmptyCode
	}
	if err := core.ValidateSearchStats(&stats); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeStatsKey(code), storage.MarshalSearchStats(stats)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteStats removes stats for one or more product codes.
func (r *StatsRepository) DeleteStats(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, code := range codes {
			if err := tx.Delete(makeStatsKey(code)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// AllStats retrieves every stored (code, stats) pair. Malformed entries are
// skipped with a warn log.
func (r *StatsRepository) AllStats(ctx context.Context) (map[string]core.SearchStats, error) {
	result := make(map[string]core.SearchStats)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(statsPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			code := statsKeyCode(item.Key())
			err := item.Value(func(val []byte) error {
				decoded, decodeErr := storage.UnmarshalSearchStats(val)
				if decodeErr != nil {
					r.logger.Warn("skipping malformed stats entry", "code", code, "err", decodeErr)
					return nil
				}
				result[code] = decoded
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecentSearches retrieves the persisted recent-search terms. Missing or
// malformed data yields an empty list.
func (r *StatsRepository) RecentSearches(ctx context.Context) ([]string, error) {
	var terms []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(recentSearchesKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, decodeErr := storage.UnmarshalTermList(val)
			if decodeErr != nil {
				r.logger.Warn("discarding malformed recent searches", "err", decodeErr)
				return nil
			}
			terms = decoded
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// PutRecentSearches replaces the persisted recent-search terms.
func (r *StatsRepository) PutRecentSearches(ctx context.Context, terms []string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(recentSearchesKey), storage.MarshalTermList(terms)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
