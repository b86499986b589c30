package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompact(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "LAPIZ", "lapiz"},
		{"accents folded", "Lápiz Canción Ñandú", "lapizcancionnandu"},
		{"whitespace removed", " a b\tc\nd ", "abcd"},
		{"punctuation kept", "ABC-123/X", "abc-123/x"},
		{"empty", "", ""},
		{"only whitespace", " \t\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCompact(tc.in))
		})
	}
}

func TestNormalizeTokens(t *testing.T) {
	assert.Equal(t, []string{"abc", "123", "x"}, NormalizeTokens("ABC-123/x"))
	assert.Equal(t, []string{"lapiz", "hb"}, NormalizeTokens("  Lápiz   HB  "))
	assert.Empty(t, NormalizeTokens("--- ///"))
}

func TestNormalizationIdempotent(t *testing.T) {
	inputs := []string{"Lápiz HB-2", "CUADERNO Rayado 84h", "ábc  déf", "ABC-123/X"}
	for _, in := range inputs {
		compact := NormalizeCompact(in)
		assert.Equal(t, compact, NormalizeCompact(compact), in)

		spaced := NormalizeSpaced(in)
		assert.Equal(t, spaced, NormalizeSpaced(spaced), in)
	}
}

func TestQueryWords(t *testing.T) {
	assert.Equal(t, []string{"lapiz", "hb"}, queryWords("  Lápiz   HB "))
	assert.Empty(t, queryWords("   "))
	assert.Empty(t, queryWords(""))
}
