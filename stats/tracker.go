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

package stats

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mercaderia/pricebook/core"
	"github.com/mercaderia/pricebook/storage"
)

// Source labels for recorded search events.
const (
	SourceResultClick    = "result_click"
	SourceRecentSearches = "recent_searches"
	SourcePopularList    = "popular_list"
)

// DefaultTopN is the popular-products view size when the caller passes a
// non-positive n.
const DefaultTopN = 6

// MaxRecentSearches caps the session's recent-search history.
const MaxRecentSearches = 8

// MinRecentSearchLength is the shortest term kept in the recent-search
// history.
const MinRecentSearchLength = 2

// Tracker accumulates search events per product code and keeps the
// recent-search history. State is held in memory and written through to the
// repository on every change.
type Tracker struct {
	repo   storage.StatsRepository
	logger *slog.Logger
	now    func() time.Time
	stats  map[string]core.SearchStats
	recent []string
}

// Option configures a Tracker.
type Option func(*Tracker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// WithClock sets the timestamp source for recorded events.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) error {
		if now == nil {
			now = time.Now
		}
		t.now = now
		return nil
	}
}

// NewTracker creates a tracker backed by the given repository and loads the
// persisted stats and recent searches into memory.
func NewTracker(ctx context.Context, repo storage.StatsRepository, opts ...Option) (*Tracker, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	t := &Tracker{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	stats, err := repo.AllStats(ctx)
	if err != nil {
		return nil, err
	}
	t.stats = stats

	recent, err := repo.RecentSearches(ctx)
	if err != nil {
		return nil, err
	}
	t.recent = recent

	return t, nil
}

// Record registers one search event for a product code: the counter goes
// up, the last-searched timestamp moves to now, an unseen term joins the
// front of the code's recent-terms list and the per-source counter
// increments. A term already on the list keeps its position.
func (t *Tracker) Record(ctx context.Context, code, term, source string) error {
	if code == "" {
		return core.ErrEmptyCode
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return ErrEmptyTerm
	}

	s := t.stats[code]
	s.Count++
	s.LastSearched = t.now().UTC()
	s.Terms = pushIfAbsent(s.Terms, term, core.MaxStatsTerms)
	if s.Sources == nil {
		s.Sources = make(map[string]int)
	}
	s.Sources[source]++

	if err := t.repo.PutStats(ctx, code, s); err != nil {
		return err
	}
	t.stats[code] = s
	return nil
}

// Lookup returns the stats for a code. Satisfies search.StatsLookup.
func (t *Tracker) Lookup(code string) (core.SearchStats, bool) {
	s, ok := t.stats[code]
	return s, ok
}

// TopN returns the n most searched codes, count descending with more
// recently searched codes first on ties. Non-positive n means DefaultTopN.
func (t *Tracker) TopN(n int) []core.PopularProduct {
	if n <= 0 {
		n = DefaultTopN
	}

	out := make([]core.PopularProduct, 0, len(t.stats))
	for code, s := range t.stats {
		out = append(out, core.PopularProduct{
			Code:         code,
			Count:        s.Count,
			LastSearched: s.LastSearched,
			Terms:        s.Terms,
			Sources:      s.Sources,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastSearched.After(out[j].LastSearched)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentSearches returns the session's recent search terms, most recent
// first.
func (t *Tracker) RecentSearches() []string {
	out := make([]string, len(t.recent))
	copy(out, t.recent)
	return out
}

// AddRecentSearch pushes a term onto the recent-search history. Terms
// shorter than MinRecentSearchLength are ignored; duplicates move to the
// front rather than repeating.
func (t *Tracker) AddRecentSearch(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < MinRecentSearchLength {
		return nil
	}

	updated := unshiftUnique(t.recent, term, MaxRecentSearches)
	if err := t.repo.PutRecentSearches(ctx, updated); err != nil {
		return err
	}
	t.recent = updated
	return nil
}

// RemoveRecentSearch deletes a term from the recent-search history. Unknown
// terms are a no-op.
func (t *Tracker) RemoveRecentSearch(ctx context.Context, term string) error {
	idx := -1
	for i, r := range t.recent {
		if r == term {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := make([]string, 0, len(t.recent)-1)
	updated = append(updated, t.recent[:idx]...)
	updated = append(updated, t.recent[idx+1:]...)
	if err := t.repo.PutRecentSearches(ctx, updated); err != nil {
		return err
	}
	t.recent = updated
	return nil
}

// pushIfAbsent prepends term to the list unless it is already there; a known
// term keeps its position. Trims the result to max entries.
func pushIfAbsent(list []string, term string, max int) []string {
	for _, item := range list {
		if item == term {
			return list
		}
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, term)
	out = append(out, list...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// unshiftUnique prepends term to the list, dropping any previous occurrence
// and trimming the result to max entries.
func unshiftUnique(list []string, term string, max int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, term)
	for _, item := range list {
		if item == term {
			continue
		}
		out = append(out, item)
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}
