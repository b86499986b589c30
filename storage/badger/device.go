package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/mercaderia/pricebook/storage"
)

// DeviceRepository implements storage.DeviceRepository for BadgerDB.
type DeviceRepository struct {
	backend *Backend
}

var _ storage.DeviceRepository = (*DeviceRepository)(nil)

// NewDeviceRepository creates a new DeviceRepository.
func NewDeviceRepository(backend *Backend) (*DeviceRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &DeviceRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *DeviceRepository) Close() error {
	return nil
}

// DeviceID retrieves the stored device identifier.
func (r *DeviceRepository) DeviceID(ctx context.Context) (string, bool, error) {
	var (
		id    string
		found bool
	)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(deviceIDKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			found = true
			return nil
		})
	}, false)
	if err != nil {
		return "", false, err
	}
	return id, found, nil
}

// PutDeviceID stores the device identifier.
func (r *DeviceRepository) PutDeviceID(ctx context.Context, id string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(deviceIDKey), []byte(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
