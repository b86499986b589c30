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

// Package catalog turns raw price-book payloads into searchable catalogs.
//
// A payload arrives either as a bare JSON array of line items or as an
// envelope object carrying the items plus update metadata and a change set.
// Payloads may additionally be encrypted (AES-256-ECB over the JSON text,
// base64 encoded); DecryptPayload recovers the plaintext for callers that
// hold such blobs.
//
// The Builder folds line items into products keyed by code, preserving the
// order in which codes first appear. Per-item normalization work is fanned
// out over a worker pool before the sequential fold.
package catalog
