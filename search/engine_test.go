package search

import (
	"strings"
	"testing"
	"time"

	"github.com/mercaderia/pricebook/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMonitor struct {
	scored    int
	cacheHits int
	exactHits int
	finished  int
}

var _ Monitor = (*countingMonitor)(nil)

func (m *countingMonitor) Start(_ string)                 {}
func (m *countingMonitor) CacheHit(_ string)              { m.cacheHits++ }
func (m *countingMonitor) ExactHit(_ *core.Product)       { m.exactHits++ }
func (m *countingMonitor) Scored(_ *core.Product, _ int)  { m.scored++ }
func (m *countingMonitor) Finish(_ *Result)               { m.finished++ }

func testCatalog() *core.Catalog {
	return core.NewCatalog([]*core.Product{
		testProduct("ABC-123", "Lápiz grafito HB"),
		testProduct("LAP-01", "Lápiz de color"),
		testProduct("CUA-55", "Cuaderno rayado"),
	})
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	e.SetCatalog(testCatalog())
	return e
}

func TestEngine_Search(t *testing.T) {
	e := newTestEngine(t)

	t.Run("not loaded", func(t *testing.T) {
		empty, err := NewEngine()
		require.NoError(t, err)
		_, err = empty.Search("lapiz")
		assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	})

	t.Run("ranked results", func(t *testing.T) {
		result, err := e.Search("lapiz")
		require.NoError(t, err)
		require.Len(t, result.Products, 2)
		assert.False(t, result.Home)
		// LAP-01 has "lap" in the code, ABC-123 only in the description.
		assert.Equal(t, "LAP-01", result.Products[0].Code)
		assert.Equal(t, "ABC-123", result.Products[1].Code)
	})

	t.Run("non-match excluded", func(t *testing.T) {
		result, err := e.Search("cuaderno lapiz")
		require.NoError(t, err)
		assert.Empty(t, result.Products)
	})

	t.Run("whitespace-only is home", func(t *testing.T) {
		result, err := e.Search("   \t ")
		require.NoError(t, err)
		assert.True(t, result.Home)
		assert.Empty(t, result.Products)
	})

	t.Run("long query truncated", func(t *testing.T) {
		long := strings.Repeat("x", 150)
		result, err := e.Search(long)
		require.NoError(t, err)
		assert.Len(t, []rune(result.Term), MaxQueryLength)
	})
}

func TestEngine_CacheIdempotence(t *testing.T) {
	e := newTestEngine(t)

	first := &countingMonitor{}
	r1, err := e.SearchWithMonitor("lapiz", false, first)
	require.NoError(t, err)
	assert.Zero(t, first.cacheHits)
	assert.Positive(t, first.scored)

	second := &countingMonitor{}
	r2, err := e.SearchWithMonitor("lapiz", false, second)
	require.NoError(t, err)
	assert.Equal(t, 1, second.cacheHits)
	assert.Zero(t, second.scored)
	assert.Equal(t, r1.Products, r2.Products)
}

func TestEngine_SetCatalogResetsCache(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Search("lapiz")
	require.NoError(t, err)

	e.SetCatalog(testCatalog())

	monitor := &countingMonitor{}
	_, err = e.SearchWithMonitor("lapiz", false, monitor)
	require.NoError(t, err)
	assert.Zero(t, monitor.cacheHits)
	assert.Positive(t, monitor.scored)
}

func TestEngine_SearchExact(t *testing.T) {
	e := newTestEngine(t)

	t.Run("single product, scorer bypassed", func(t *testing.T) {
		monitor := &countingMonitor{}
		result, err := e.SearchWithMonitor("ABC-123", true, monitor)
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "ABC-123", result.Products[0].Code)
		assert.Equal(t, 1, monitor.exactHits)
		assert.Zero(t, monitor.scored)
	})

	t.Run("priority over cache", func(t *testing.T) {
		// Prime the cache with the fuzzy result for the same term.
		fuzzy, err := e.Search("ABC-123")
		require.NoError(t, err)
		require.NotEmpty(t, fuzzy.Products)

		monitor := &countingMonitor{}
		result, err := e.SearchWithMonitor("ABC-123", true, monitor)
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Zero(t, monitor.cacheHits)
	})

	t.Run("unknown code falls back", func(t *testing.T) {
		result, err := e.SearchExact("lapiz")
		require.NoError(t, err)
		assert.Len(t, result.Products, 2)
	})
}

func TestEngine_Modes(t *testing.T) {
	t.Run("substring mode keeps catalog order", func(t *testing.T) {
		e := newTestEngine(t, WithMode(ModeSubstring))
		result, err := e.Search("lapiz")
		require.NoError(t, err)
		require.Len(t, result.Products, 2)
		assert.Equal(t, "ABC-123", result.Products[0].Code)
		assert.Equal(t, "LAP-01", result.Products[1].Code)
	})

	t.Run("numeric mode needs whole digit tokens", func(t *testing.T) {
		e := newTestEngine(t, WithMode(ModeNumeric))

		result, err := e.Search("123")
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "ABC-123", result.Products[0].Code)

		result, err = e.Search("12")
		require.NoError(t, err)
		assert.Empty(t, result.Products)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := NewEngine(WithMode(Mode(99)))
		assert.ErrorIs(t, err, ErrInvalidMode)
	})
}

func TestEngine_StatsInfluenceRanking(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC) }
	stats := map[string]core.SearchStats{
		"ABC-123": {Count: 15, LastSearched: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)},
	}
	lookup := func(code string) (core.SearchStats, bool) {
		s, ok := stats[code]
		return s, ok
	}

	e := newTestEngine(t, WithStatsLookup(lookup), WithClock(clock))

	// Popularity (+30) and recency (+20) push ABC-123 past LAP-01 for a
	// query they otherwise tie on description grounds.
	result, err := e.Search("lapiz")
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "ABC-123", result.Products[0].Code)
	assert.Equal(t, "LAP-01", result.Products[1].Code)
}
