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
	"time"
	"unicode"

	"github.com/mercaderia/pricebook/core"
)

// StatsLookup resolves historical search stats for a product code. A nil
// lookup disables the popularity and recency signals.
type StatsLookup func(code string) (core.SearchStats, bool)

// Score weights, additive across independent signals. Hand-tuned heuristic
// ranking, not a formal IR model: exact and prefix code matches dominate,
// character-level overlap acts as a fallback for partial codes, and
// popularity folds in a collaborative signal.
const (
	scoreExactCode     = 200
	scoreCodePrefix    = 150
	scoreCodeContains  = 120
	scoreDescContains  = 80
	scoreCodeCoverage  = 70
	scoreDescCoverage  = 60
	popularityCap      = 30
	scoreRecency       = 20
	scoreDigitInCode   = 15
	scoreDigitInDesc   = 10
	scoreTrigramCode   = 40
	scoreTrigramDesc   = 20
	recencyWindow      = 7 * 24 * time.Hour
)

// Score ranks a product against a query. Pure function of the compact
// normalizations of query, code and description plus the code's stats; the
// reference time only feeds the recency signal.
func Score(product *core.Product, rawQuery string, stats StatsLookup, now time.Time) int {
	query := NormalizeCompact(rawQuery)
	if query == "" {
		return 0
	}
	code := NormalizeCompact(product.Code)
	desc := NormalizeCompact(product.Description)

	score := 0

	if code == query {
		score += scoreExactCode
	}
	if strings.HasPrefix(code, query) {
		score += scoreCodePrefix
	}
	if strings.Contains(code, query) {
		score += scoreCodeContains
	}
	if strings.Contains(desc, query) {
		score += scoreDescContains
	}
	if coversAllRunes(code, query) {
		score += scoreCodeCoverage
	}
	if coversAllRunes(desc, query) {
		score += scoreDescCoverage
	}

	if stats != nil {
		if s, ok := stats(product.Code); ok {
			popularity := 2 * s.Count
			if popularity > popularityCap {
				popularity = popularityCap
			}
			score += popularity
			if !s.LastSearched.IsZero() && now.Sub(s.LastSearched) < recencyWindow {
				score += scoreRecency
			}
		}
	}

	for _, r := range query {
		if !unicode.IsDigit(r) {
			continue
		}
		if strings.ContainsRune(code, r) {
			score += scoreDigitInCode
		}
		if strings.ContainsRune(desc, r) {
			score += scoreDigitInDesc
		}
	}

	queryRunes := []rune(query)
	for i := 0; i+3 <= len(queryRunes); i++ {
		tri := string(queryRunes[i : i+3])
		if strings.Contains(code, tri) {
			score += scoreTrigramCode
		}
		if strings.Contains(desc, tri) {
			score += scoreTrigramDesc
		}
	}

	return score
}

// coversAllRunes reports whether every rune of query occurs somewhere in
// text, in any order and with repeats allowed.
func coversAllRunes(text, query string) bool {
	if text == "" {
		return false
	}
	for _, r := range query {
		if !strings.ContainsRune(text, r) {
			return false
		}
	}
	return true
}
