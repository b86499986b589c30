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

// Package access gates usage on a per-device allow-list.
//
// Each installation generates one short human-readable device identifier
// and persists it. An operator adds that identifier to the published user
// list; the gate then grants or denies access by looking the identifier up
// in an already-fetched, already-parsed copy of that list. Fetching and
// transport are the caller's concern.
package access

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mercaderia/pricebook/storage"
)

// deviceIDCharset omits I, 1, O and 0 so identifiers read unambiguously.
const deviceIDCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Decision is the outcome of an allow-list check.
type Decision int

const (
	// DeniedUnknown means the device is not on the list yet.
	DeniedUnknown Decision = iota
	// DeniedInactive means the device is on the list but deactivated.
	DeniedInactive
	// Allowed means the device is on the list and active.
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case DeniedInactive:
		return "denied: deactivated"
	default:
		return "denied: unknown device"
	}
}

// User is one allow-list entry.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// UserList is the published allow-list document.
type UserList struct {
	Users []User `json:"users"`
}

// ParseUserList decodes an allow-list document. A document without a users
// array yields an empty list, which denies everyone.
func ParseUserList(data []byte) (*UserList, error) {
	var list UserList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing user list: %w", err)
	}
	return &list, nil
}

// Gate owns the device identity and decides access against a user list.
type Gate struct {
	repo   storage.DeviceRepository
	logger *slog.Logger
}

// Option configures a Gate.
type Option func(*Gate) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGate creates an access gate backed by the device repository.
func NewGate(repo storage.DeviceRepository, opts ...Option) (*Gate, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	g := &Gate{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// EnsureDeviceID returns the persisted device identifier, generating and
// storing one on first use. The identifier is stable for the life of the
// store.
func (g *Gate) EnsureDeviceID(ctx context.Context) (string, error) {
	id, found, err := g.repo.DeviceID(ctx)
	if err != nil {
		return "", err
	}
	if found {
		return id, nil
	}

	id, err = generateDeviceID()
	if err != nil {
		return "", err
	}
	if err := g.repo.PutDeviceID(ctx, id); err != nil {
		return "", err
	}
	g.logger.Info("generated device identifier", "id", id)
	return id, nil
}

// Check resolves this device's access against the user list. The matched
// user is returned for Allowed and DeniedInactive decisions.
func (g *Gate) Check(ctx context.Context, list *UserList) (Decision, *User, error) {
	id, err := g.EnsureDeviceID(ctx)
	if err != nil {
		return DeniedUnknown, nil, err
	}
	if list == nil {
		return DeniedUnknown, nil, nil
	}

	for i := range list.Users {
		user := &list.Users[i]
		if user.ID != id {
			continue
		}
		// Absent means active; only an explicit false deactivates.
		if user.Active != nil && !*user.Active {
			return DeniedInactive, user, nil
		}
		return Allowed, user, nil
	}
	return DeniedUnknown, nil, nil
}

// generateDeviceID builds an identifier like USR-X9J2-M5K8: two groups of
// four characters over the confusion-free charset.
func generateDeviceID() (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("reading randomness: %w", err)
	}

	var b strings.Builder
	b.WriteString("USR")
	for i, r := range raw {
		if i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(deviceIDCharset[int(r)%len(deviceIDCharset)])
	}
	return b.String(), nil
}
