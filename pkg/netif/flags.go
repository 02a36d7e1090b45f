package netif

import "strings"

// Flags is a bitmask of state changes.
type Flags uint32

const (
	// FlagRole indicates the network role changed.
	FlagRole Flags = 1 << iota

	// FlagIP6Enabled indicates the IP interface went up or down.
	FlagIP6Enabled

	// FlagProtocolEnabled indicates the mesh protocol was enabled or disabled.
	FlagProtocolEnabled

	// FlagNetworkRestored indicates network information was restored from settings.
	FlagNetworkRestored

	// FlagSettingsWiped indicates persistent settings were erased.
	FlagSettingsWiped
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagRole, "ROLE"},
	{FlagIP6Enabled, "IP6_ENABLED"},
	{FlagProtocolEnabled, "PROTOCOL_ENABLED"},
	{FlagNetworkRestored, "NETWORK_RESTORED"},
	{FlagSettingsWiped, "SETTINGS_WIPED"},
}

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String returns the set flag names joined by "|".
func (f Flags) String() string {
	if f == 0 {
		return "NONE"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "UNKNOWN")
	}
	return strings.Join(parts, "|")
}
