package storage

import (
	"testing"
	"time"

	"github.com/mercaderia/pricebook/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchStatsRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("full value", func(t *testing.T) {
		in := core.SearchStats{
			Count:        7,
			LastSearched: now,
			Terms:        []string{"lapicero", "faber 035"},
			Sources:      map[string]int{"result_click": 5, "popular_list": 2},
		}

		out, err := UnmarshalSearchStats(MarshalSearchStats(in))
		require.NoError(t, err)
		assert.Equal(t, in.Count, out.Count)
		assert.True(t, in.LastSearched.Equal(out.LastSearched))
		assert.Equal(t, in.Terms, out.Terms)
		assert.Equal(t, in.Sources, out.Sources)
	})

	t.Run("zero value", func(t *testing.T) {
		out, err := UnmarshalSearchStats(MarshalSearchStats(core.SearchStats{}))
		require.NoError(t, err)
		assert.Zero(t, out.Count)
		assert.Empty(t, out.Terms)
		assert.Empty(t, out.Sources)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := UnmarshalSearchStats([]byte{0xff})
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}

func TestTermListRoundTrip(t *testing.T) {
	t.Run("ordered terms", func(t *testing.T) {
		in := []string{"cuaderno", "lapicero azul", "borrador"}
		out, err := UnmarshalTermList(MarshalTermList(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("empty list", func(t *testing.T) {
		out, err := UnmarshalTermList(MarshalTermList(nil))
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := UnmarshalTermList([]byte{0xff})
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
