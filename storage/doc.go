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


// Package storage provides the storage abstraction layer for pricebook.
//
// This package defines repository interfaces that decouple the persisted
// search state (per-code statistics, the recent-searches list, the device
// identifier) from the engine and tracker logic, so different backends
// (BadgerDB, in-memory) can be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - StatsRepository: per-code search statistics and recent searches
//   - DeviceRepository: the locally generated device identifier
//
// Public constructors return interfaces:
//
//	repo, err := badger.NewStatsRepository(backend)  // returns storage.StatsRepository
//
// # Degradation
//
// Stored values that are missing or fail to deserialize degrade to empty
// defaults. Readers never receive a deserialization error for a value the
// caller can recover from; the condition is logged instead.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
