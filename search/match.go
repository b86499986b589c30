package search

import "strings"

// MatchesAll reports whether every word of the query appears as a contiguous
// substring of the normalized product text. The query is split on
// whitespace and each word is compact-normalized before the test. Empty
// queries and empty product texts never match.
func MatchesAll(normalizedText, rawQuery string) bool {
	if normalizedText == "" {
		return false
	}
	words := queryWords(rawQuery)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(normalizedText, w) {
			return false
		}
	}
	return true
}

// MatchesNumeric is the strict variant used for code-heavy queries. Both
// sides go through tokenizing normalization. Every query token must be
// present; a token made entirely of digits must equal a whole product token,
// while any other token may appear as a substring.
func MatchesNumeric(productText, rawQuery string) bool {
	tokens := NormalizeTokens(productText)
	queryTokens := NormalizeTokens(rawQuery)
	if len(tokens) == 0 || len(queryTokens) == 0 {
		return false
	}
	spaced := strings.Join(tokens, " ")
	for _, qt := range queryTokens {
		if allDigits(qt) {
			if !containsToken(tokens, qt) {
				return false
			}
			continue
		}
		if !strings.Contains(spaced, qt) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
