// Copyright 2026 Mercaderia Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pricebook is a searchable product price book: it loads a
// (possibly encrypted) catalog payload, groups line items into products
// with unit variants and answers free-text queries against the in-memory
// catalog with relevance ranking, popularity tracking and a per-device
// access gate.
package pricebook

import (
	"context"
	"log/slog"

	"github.com/mercaderia/pricebook/access"
	"github.com/mercaderia/pricebook/catalog"
	"github.com/mercaderia/pricebook/core"
	"github.com/mercaderia/pricebook/search"
	"github.com/mercaderia/pricebook/stats"
	"github.com/mercaderia/pricebook/storage"
	"github.com/mercaderia/pricebook/storage/badger"
)

// Book owns the storage backend, the popularity tracker, the access gate
// and the search engine, and exposes the public lifecycle:
// Open -> LoadCatalog -> Search/Record/... -> Close.
type Book struct {
	backend    *badger.Backend
	statsRepo  storage.StatsRepository
	deviceRepo storage.DeviceRepository
	tracker    *stats.Tracker
	gate       *access.Gate
	engine     *search.Engine
	builder    *catalog.Builder
	catalog    *core.Catalog
	logger     *slog.Logger
}

// BookOption configures a Book.
type BookOption func(*bookOptions)

type bookOptions struct {
	mode     search.Mode
	inMemory bool
	logger   *slog.Logger
}

// WithMode selects the engine's matching mode.
// Default is search.ModeScored.
func WithMode(mode search.Mode) BookOption {
	return func(o *bookOptions) {
		o.mode = mode
	}
}

// WithInMemoryStore keeps all persisted state in memory. Used by tests and
// throwaway sessions.
func WithInMemoryStore() BookOption {
	return func(o *bookOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BookOption {
	return func(o *bookOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open creates a price book with its storage at filePath. The catalog is
// not loaded yet; searches fail with search.ErrCatalogNotLoaded until
// LoadCatalog succeeds.
func Open(ctx context.Context, filePath string, opts ...BookOption) (*Book, error) {
	options := &bookOptions{
		mode:   search.ModeScored,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	statsRepo, err := badger.NewStatsRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	deviceRepo, err := badger.NewDeviceRepository(backend)
	if err != nil {
		statsRepo.Close()
		backend.Close()
		return nil, err
	}

	tracker, err := stats.NewTracker(ctx, statsRepo, stats.WithLogger(options.logger))
	if err != nil {
		deviceRepo.Close()
		statsRepo.Close()
		backend.Close()
		return nil, err
	}

	gate, err := access.NewGate(deviceRepo, access.WithLogger(options.logger))
	if err != nil {
		deviceRepo.Close()
		statsRepo.Close()
		backend.Close()
		return nil, err
	}

	engine, err := search.NewEngine(
		search.WithMode(options.mode),
		search.WithStatsLookup(tracker.Lookup),
		search.WithLogger(options.logger),
	)
	if err != nil {
		deviceRepo.Close()
		statsRepo.Close()
		backend.Close()
		return nil, err
	}

	builder, err := catalog.NewBuilder(catalog.WithLogger(options.logger))
	if err != nil {
		deviceRepo.Close()
		statsRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Book{
		backend:    backend,
		statsRepo:  statsRepo,
		deviceRepo: deviceRepo,
		tracker:    tracker,
		gate:       gate,
		engine:     engine,
		builder:    builder,
		logger:     options.logger,
	}, nil
}

// LoadCatalog fetches a payload from the source, groups it into a catalog
// and swaps it into the engine. A failed load leaves the previous catalog
// (or the unloaded state) untouched. The payload is returned so callers can
// surface metadata and change sets.
func (b *Book) LoadCatalog(ctx context.Context, source catalog.Source) (*catalog.Payload, error) {
	cat, payload, err := b.builder.BuildFromSource(ctx, source)
	if err != nil {
		return nil, err
	}
	b.catalog = cat
	b.engine.SetCatalog(cat)
	return payload, nil
}

// Catalog returns the currently loaded catalog, or nil before the first
// successful LoadCatalog.
func (b *Book) Catalog() *core.Catalog {
	return b.catalog
}

// Search evaluates a free-text query against the loaded catalog.
func (b *Book) Search(term string) (*search.Result, error) {
	return b.engine.Search(term)
}

// SearchExact evaluates a query with the exact-code bypass.
func (b *Book) SearchExact(term string) (*search.Result, error) {
	return b.engine.SearchExact(term)
}

// Record registers a search event for a product code and remembers the term
// in the recent-search history.
func (b *Book) Record(ctx context.Context, code, term, source string) error {
	if err := b.tracker.Record(ctx, code, term, source); err != nil {
		return err
	}
	return b.tracker.AddRecentSearch(ctx, term)
}

// Popular returns the most searched products, resolved against the loaded
// catalog where possible. Non-positive n means the default view size.
func (b *Book) Popular(n int) []core.PopularProduct {
	return b.tracker.TopN(n)
}

// Recent returns the recent search terms, most recent first.
func (b *Book) Recent() []string {
	return b.tracker.RecentSearches()
}

// RemoveRecent deletes one term from the recent-search history.
func (b *Book) RemoveRecent(ctx context.Context, term string) error {
	return b.tracker.RemoveRecentSearch(ctx, term)
}

// PruneStats drops persisted stats for codes absent from the loaded
// catalog. Returns the number of codes removed.
func (b *Book) PruneStats(ctx context.Context) (int, error) {
	return b.tracker.Prune(ctx, b.catalog)
}

// DeviceID returns this installation's stable device identifier,
// generating it on first use.
func (b *Book) DeviceID(ctx context.Context) (string, error) {
	return b.gate.EnsureDeviceID(ctx)
}

// CheckAccess resolves this device's access against an allow-list.
func (b *Book) CheckAccess(ctx context.Context, list *access.UserList) (access.Decision, *access.User, error) {
	return b.gate.Check(ctx, list)
}

// Tracker exposes the popularity tracker for callers that need the full
// surface.
func (b *Book) Tracker() *stats.Tracker {
	return b.tracker
}

// Close releases the builder's worker pool, the repositories and the
// storage backend.
func (b *Book) Close() error {
	b.builder.Release()

	if err := b.deviceRepo.Close(); err != nil {
		b.logger.Error("error closing device repository", "err", err)
		return err
	}
	if err := b.statsRepo.Close(); err != nil {
		b.logger.Error("error closing stats repository", "err", err)
		return err
	}
	if err := b.backend.Close(); err != nil {
		b.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
