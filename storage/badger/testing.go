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


package badger

import "github.com/mercaderia/pricebook/storage"

// NewMemoryRepositories creates in-memory stats and device repositories for
// testing. Returns statsRepo, deviceRepo, backend, and error.
// Caller must close both repos and the backend when done.
func NewMemoryRepositories() (storage.StatsRepository, storage.DeviceRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	statsRepo, err := NewStatsRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	deviceRepo, err := NewDeviceRepository(backend)
	if err != nil {
		statsRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return statsRepo, deviceRepo, backend, nil
}
