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


package core

import "fmt"

// ValidateSearchStats validates a SearchStats value before it is persisted.
//
// Validation rules:
//   - Count must not be negative
//   - Terms must not exceed MaxStatsTerms entries
//
// NOT validated:
//   - LastSearched (a zero timestamp is valid for imported legacy data)
//   - Sources (any label set is acceptable)
func ValidateSearchStats(s *SearchStats) error {
	if s == nil {
		return fmt.Errorf("%w: stats is nil", ErrInvalidSearchStats)
	}

	if s.Count < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSearchStats, ErrNegativeCount)
	}

	if len(s.Terms) > MaxStatsTerms {
		return fmt.Errorf("%w: %w", ErrInvalidSearchStats, ErrTooManyTerms)
	}

	return nil
}
