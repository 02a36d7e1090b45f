package scan

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/meshnode/meshnode-go/pkg/instance"
	"github.com/meshnode/meshnode-go/pkg/mle"
)

// TXT record keys of a border agent advertisement.
const (
	TXTNetworkName   = "nn"
	TXTExtendedPanID = "xp"
	TXTExtAddress    = "xa"
	TXTPanID         = "pi"
	TXTChannel       = "ch"
	TXTVersion       = "tv"
	TXTJoinable      = "jn"
)

// ErrInvalidTXT is returned for advertisements that cannot be turned into
// a scan result.
var ErrInvalidTXT = errors.New("invalid border agent TXT record")

// TXTRecords is a decoded TXT record set.
type TXTRecords map[string]string

// ParseTXT splits "key=value" strings. Keys without "=" map to "".
func ParseTXT(strs []string) TXTRecords {
	txt := make(TXTRecords, len(strs))
	for _, s := range strs {
		key, value, _ := strings.Cut(s, "=")
		if key != "" {
			txt[key] = value
		}
	}
	return txt
}

// ResultFromTXT builds an active scan result from a border agent's TXT
// records. The network name is required; other keys are optional but must
// be well formed when present.
func ResultFromTXT(txt TXTRecords) (*instance.ActiveScanResult, error) {
	name, ok := txt[TXTNetworkName]
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidTXT, TXTNetworkName)
	}
	if len(name) > mle.MaxNetworkNameLength {
		return nil, fmt.Errorf("%w: network name too long", ErrInvalidTXT)
	}

	res := &instance.ActiveScanResult{NetworkName: name}

	if v, ok := txt[TXTExtendedPanID]; ok {
		if err := decodeHex8(v, &res.ExtendedPanID); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTXT, TXTExtendedPanID, err)
		}
	}
	if v, ok := txt[TXTExtAddress]; ok {
		if err := decodeHex8(v, &res.ExtAddress); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTXT, TXTExtAddress, err)
		}
	}
	if v, ok := txt[TXTPanID]; ok {
		pan, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTXT, TXTPanID, err)
		}
		res.PanID = uint16(pan)
	}
	if v, ok := txt[TXTChannel]; ok {
		ch, err := strconv.ParseUint(v, 10, 8)
		if err != nil || ch < mle.MinChannel || ch > mle.MaxChannel {
			return nil, fmt.Errorf("%w: %s: %q", ErrInvalidTXT, TXTChannel, v)
		}
		res.Channel = uint8(ch)
	}
	if v, ok := txt[TXTVersion]; ok {
		res.Version = parseVersion(v)
	}
	if v, ok := txt[TXTJoinable]; ok {
		res.Joinable = v == "1" || v == "true"
	}

	return res, nil
}

func decodeHex8(s string, out *[8]byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != len(out) {
		return fmt.Errorf("want %d bytes, got %d", len(out), len(b))
	}
	copy(out[:], b)
	return nil
}

// parseVersion maps a "1.x[.y]" release string to its protocol version
// number (1.1 is 2, 1.2 is 3, ...). Unknown formats yield 0.
func parseVersion(s string) uint8 {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 || parts[0] != "1" {
		return 0
	}
	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || minor >= 255 {
		return 0
	}
	return uint8(minor + 1)
}
