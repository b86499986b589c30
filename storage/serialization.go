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


package storage

import (
	"fmt"

	"github.com/mercaderia/pricebook/core"
)

// MarshalSearchStats serializes a SearchStats value to bytes.
func MarshalSearchStats(stats core.SearchStats) []byte {
	buf := make([]byte, core.SearchStatsMUS.Size(stats))
	core.SearchStatsMUS.Marshal(stats, buf)
	return buf
}

// UnmarshalSearchStats deserializes a SearchStats value from bytes.
func UnmarshalSearchStats(data []byte) (core.SearchStats, error) {
	stats, _, err := core.SearchStatsMUS.Unmarshal(data)
	if err != nil {
		return core.SearchStats{}, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return stats, nil
}

// MarshalTermList serializes an ordered term list to bytes.
func MarshalTermList(terms []string) []byte {
	buf := make([]byte, core.TermListMUS.Size(terms))
	core.TermListMUS.Marshal(terms, buf)
	return buf
}

// UnmarshalTermList deserializes an ordered term list from bytes.
func UnmarshalTermList(data []byte) ([]string, error) {
	terms, _, err := core.TermListMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return terms, nil
}
