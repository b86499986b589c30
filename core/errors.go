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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSearchStats indicates a SearchStats value failed validation.
	ErrInvalidSearchStats = errors.New("invalid search stats")

	// ErrNegativeCount indicates a negative search counter.
	ErrNegativeCount = errors.New("count cannot be negative")

	// ErrTooManyTerms indicates the recent-terms list exceeds its cap.
	ErrTooManyTerms = errors.New("too many recent terms")

	// ErrEmptyCode indicates an empty product code where one is required.
	ErrEmptyCode = errors.New("product code cannot be empty")
)
