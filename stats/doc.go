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

// Package stats tracks search popularity per product code.
//
// The Tracker loads all persisted stats into memory at construction and
// keeps them there; every recorded event is a read-modify-write against the
// in-memory map followed by a write-through to the stats repository. It also
// owns the session's recent-search history. Updates are not serialized
// internally; callers sharing a Tracker across goroutines must do that
// themselves.
package stats
