package mle

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Channel bounds for the 2.4 GHz O-QPSK PHY.
const (
	MinChannel = 11
	MaxChannel = 26
)

// MaxNetworkNameLength is the maximum network name length in bytes.
const MaxNetworkNameLength = 16

// ErrInvalidNetworkInfo is returned for persisted network info that fails validation.
var ErrInvalidNetworkInfo = errors.New("invalid network info")

// NetworkInfo is the network state persisted across restarts.
type NetworkInfo struct {
	// Role is the role the device held when the info was saved.
	Role Role `cbor:"1,keyasint"`

	// NetworkName is the human readable network name.
	NetworkName string `cbor:"2,keyasint"`

	// ExtendedPanID identifies the network.
	ExtendedPanID [8]byte `cbor:"3,keyasint"`

	// PanID is the IEEE 802.15.4 PAN ID.
	PanID uint16 `cbor:"4,keyasint"`

	// Channel is the operating channel.
	Channel uint8 `cbor:"5,keyasint"`

	// NetworkKey is the network master key.
	NetworkKey [16]byte `cbor:"6,keyasint"`

	// KeySequence is the current key sequence counter.
	KeySequence uint32 `cbor:"7,keyasint"`

	// ExtAddress is the device's extended address.
	ExtAddress [8]byte `cbor:"8,keyasint"`

	// Rloc16 is the device's last routing locator.
	Rloc16 uint16 `cbor:"9,keyasint,omitempty"`
}

// Validate checks the network info for consistency.
func (n *NetworkInfo) Validate() error {
	if n.Channel < MinChannel || n.Channel > MaxChannel {
		return fmt.Errorf("%w: channel %d", ErrInvalidNetworkInfo, n.Channel)
	}
	if len(n.NetworkName) == 0 || len(n.NetworkName) > MaxNetworkNameLength {
		return fmt.Errorf("%w: network name length %d", ErrInvalidNetworkInfo, len(n.NetworkName))
	}
	if n.Role > RoleLeader {
		return fmt.Errorf("%w: role %d", ErrInvalidNetworkInfo, n.Role)
	}
	return nil
}

// Keys holds the keys derived from the network key for one key sequence.
type Keys struct {
	MLE [16]byte
	MAC [16]byte
}

var keySalt = []byte("meshnode-keys")

// DeriveKeys derives the MLE and MAC keys for a key sequence with
// HKDF-SHA256. The sequence number is the HKDF info.
func DeriveKeys(networkKey [16]byte, sequence uint32) (Keys, error) {
	var info [4]byte
	binary.BigEndian.PutUint32(info[:], sequence)

	r := hkdf.New(sha256.New, networkKey[:], keySalt, info[:])

	var keys Keys
	if _, err := io.ReadFull(r, keys.MLE[:]); err != nil {
		return Keys{}, err
	}
	if _, err := io.ReadFull(r, keys.MAC[:]); err != nil {
		return Keys{}, err
	}
	return keys, nil
}
