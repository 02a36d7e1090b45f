package settings

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Settings errors.
var (
	ErrNotFound       = errors.New("setting not found")
	ErrNotInitialized = errors.New("settings store not initialized")
)

// Key identifies a setting.
type Key uint16

// Well-known keys.
const (
	KeyActiveDataset  Key = 0x0001
	KeyPendingDataset Key = 0x0002
	KeyNetworkInfo    Key = 0x0003
	KeyParentInfo     Key = 0x0004
	KeyChildInfo      Key = 0x0005
	KeyAutoStart      Key = 0x0006
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyActiveDataset:
		return "ACTIVE_DATASET"
	case KeyPendingDataset:
		return "PENDING_DATASET"
	case KeyNetworkInfo:
		return "NETWORK_INFO"
	case KeyParentInfo:
		return "PARENT_INFO"
	case KeyChildInfo:
		return "CHILD_INFO"
	case KeyAutoStart:
		return "AUTO_START"
	default:
		return fmt.Sprintf("KEY_%04X", uint16(k))
	}
}

// DeleteAll passed as index to Delete removes every value of a key.
const DeleteAll = -1

// Store is the persistent settings gateway.
type Store interface {
	// Init prepares the backend (loads files, creates tables).
	Init() error

	// Get returns the value at index for key, or ErrNotFound.
	Get(key Key, index int) ([]byte, error)

	// Set replaces all values of key with a single value.
	Set(key Key, value []byte) error

	// Add appends a value to key.
	Add(key Key, value []byte) error

	// Delete removes the value at index, or all values with DeleteAll.
	// Returns ErrNotFound if nothing matched.
	Delete(key Key, index int) error

	// Wipe removes every setting.
	Wipe() error
}

// Load decodes the first value of key into v.
func Load(s Store, key Key, v any) error {
	data, err := s.Get(key, 0)
	if err != nil {
		return err
	}
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Save encodes v and stores it as the only value of key.
func Save(s Store, key Key, v any) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, data)
}
