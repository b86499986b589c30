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
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes the string to NFD and drops the combining
// diacritical marks (U+0300 through U+036F). Other combining runes are
// preserved.
func foldAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCompact lowercases the input, folds accents and removes all
// whitespace. This is the canonical form used for substring matching and
// scoring, so "Lápiz HB" and "lapizhb" compare equal.
func NormalizeCompact(s string) string {
	folded := foldAccents(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTokens lowercases the input, folds accents, treats every
// non-alphanumeric rune as a separator and returns the resulting tokens.
// Used by the strict numeric strategy, which needs word boundaries the
// compact form discards.
func NormalizeTokens(s string) []string {
	folded := foldAccents(strings.ToLower(s))
	spaced := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Fields(spaced)
}

// NormalizeSpaced is the tokenizing mode as a single string: tokens joined
// by one space.
func NormalizeSpaced(s string) string {
	return strings.Join(NormalizeTokens(s), " ")
}

// queryWords splits a raw search term on whitespace and compact-normalizes
// each word. Words that normalize to nothing are dropped.
func queryWords(term string) []string {
	fields := strings.Fields(term)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := NormalizeCompact(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
