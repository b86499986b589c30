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

// Package search ranks catalog products against free-text queries.
//
// The Engine evaluates a query in three steps: a conjunctive all-words
// substring filter over each product's pre-normalized searchable text, an
// additive relevance score per surviving product, and a stable sort by score
// descending. Results are memoized per literal query string until the
// catalog is swapped.
//
// Matching behavior is selected by Mode: plain substring filtering, weighted
// scoring (the default), or strict numeric tokens where all-digit query
// words must equal a whole token of the product text.
//
// Query evaluation is synchronous and the engine does no internal locking;
// callers that share an Engine across goroutines must serialize access.
package search
