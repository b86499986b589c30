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

package search

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mercaderia/pricebook/core"
)

// MaxQueryLength caps query terms before matching. Longer input is
// truncated, not rejected.
const MaxQueryLength = 100

// Mode selects the matching behavior of an Engine.
type Mode int

const (
	// ModeScored filters with the all-words predicate and ranks matches
	// with the relevance scorer. This is the default.
	ModeScored Mode = iota
	// ModeSubstring filters with the all-words predicate only; results
	// keep catalog order.
	ModeSubstring
	// ModeNumeric filters with tokenizing normalization where all-digit
	// query words must equal a whole product token.
	ModeNumeric
)

// Result is one evaluated query: the display term and the ranked products.
// Home is set when the query was empty after trimming; the caller shows the
// browse view instead of a result list.
type Result struct {
	Term     string
	Home     bool
	Products []*core.Product
}

// Engine serves free-text queries against one loaded catalog.
type Engine struct {
	catalog *core.Catalog
	cache   *Cache
	mode    Mode
	stats   StatsLookup
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMode sets the matching mode.
// Default is ModeScored.
func WithMode(mode Mode) Option {
	return func(e *Engine) error {
		switch mode {
		case ModeScored, ModeSubstring, ModeNumeric:
			e.mode = mode
			return nil
		default:
			return ErrInvalidMode
		}
	}
}

// WithStatsLookup wires historical search stats into the scorer.
// Default is no stats, which zeroes the popularity and recency signals.
func WithStatsLookup(lookup StatsLookup) Option {
	return func(e *Engine) error {
		e.stats = lookup
		return nil
	}
}

// WithClock sets the reference-time source for the recency signal.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			now = time.Now
		}
		e.now = now
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a search engine. A catalog must be set with SetCatalog
// before the first search.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		cache:  NewCache(),
		mode:   ModeScored,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SetCatalog swaps in a newly built catalog and drops every cached result.
// The previous catalog is never partially mutated; readers either see the
// old generation or the new one.
func (e *Engine) SetCatalog(catalog *core.Catalog) {
	e.catalog = catalog
	e.cache.Reset()
	if catalog != nil {
		e.logger.Info("catalog loaded", "products", catalog.Len(), "fingerprint", catalog.Fingerprint())
	}
}

// Loaded reports whether a catalog has been set.
func (e *Engine) Loaded() bool {
	return e.catalog != nil
}

// Search evaluates a query and returns the ranked result.
// Returns ErrCatalogNotLoaded before the first SetCatalog.
func (e *Engine) Search(term string) (*Result, error) {
	return e.SearchWithMonitor(term, false, nil)
}

// SearchExact evaluates a query with the exact-code bypass: when the trimmed
// term equals a known product code, that single product is returned without
// running the predicate or the scorer. The bypass takes priority over the
// cache. A term that is not a known code falls back to a normal search.
func (e *Engine) SearchExact(term string) (*Result, error) {
	return e.SearchWithMonitor(term, true, nil)
}

// SearchWithMonitor evaluates a query with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(term string, exact bool, monitor Monitor) (*Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if e.catalog == nil {
		return nil, ErrCatalogNotLoaded
	}

	monitor.Start(term)
	trimmed := strings.TrimSpace(term)

	if exact {
		if p, ok := e.catalog.Get(trimmed); ok {
			result := &Result{Term: trimmed, Products: []*core.Product{p}}
			monitor.ExactHit(p)
			monitor.Finish(result)
			return result, nil
		}
	}

	capped := capQuery(trimmed)
	if capped == "" {
		result := &Result{Home: true}
		monitor.Finish(result)
		return result, nil
	}

	if cached, ok := e.cache.Get(capped); ok {
		monitor.CacheHit(capped)
		monitor.Finish(cached)
		return cached, nil
	}

	type candidate struct {
		product *core.Product
		score   int
	}
	var candidates []candidate
	now := e.now()
	for p := range e.catalog.Products() {
		if !e.matches(p, capped) {
			continue
		}
		score := 0
		if e.mode == ModeScored {
			score = Score(p, capped, e.stats, now)
		}
		monitor.Scored(p, score)
		candidates = append(candidates, candidate{product: p, score: score})
	}

	// Stable: equal scores keep catalog first-seen order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	products := make([]*core.Product, len(candidates))
	for i, c := range candidates {
		products[i] = c.product
	}
	result := &Result{Term: capped, Products: products}
	e.cache.Put(capped, result)

	e.logger.Debug("search evaluated", "term", capped, "hits", len(products))
	monitor.Finish(result)
	return result, nil
}

func (e *Engine) matches(p *core.Product, term string) bool {
	if e.mode == ModeNumeric {
		return MatchesNumeric(p.Code+" "+p.Description, term)
	}
	return MatchesAll(p.SearchText, term)
}

// capQuery truncates a term to MaxQueryLength runes.
func capQuery(term string) string {
	runes := []rune(term)
	if len(runes) <= MaxQueryLength {
		return term
	}
	return string(runes[:MaxQueryLength])
}
