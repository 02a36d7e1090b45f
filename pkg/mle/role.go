package mle

// Role is the device's network participation state.
type Role uint8

const (
	// RoleDisabled - the mesh protocol is not running.
	RoleDisabled Role = iota

	// RoleDetached - the protocol is running but not attached to a partition.
	RoleDetached

	// RoleChild - attached as a child.
	RoleChild

	// RoleRouter - attached as a router.
	RoleRouter

	// RoleLeader - attached as the partition leader.
	RoleLeader
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleDisabled:
		return "DISABLED"
	case RoleDetached:
		return "DETACHED"
	case RoleChild:
		return "CHILD"
	case RoleRouter:
		return "ROUTER"
	case RoleLeader:
		return "LEADER"
	default:
		return "UNKNOWN"
	}
}

// IsAttached reports whether the role is child, router or leader.
func (r Role) IsAttached() bool {
	return r == RoleChild || r == RoleRouter || r == RoleLeader
}

// ParseRole converts a role name (as returned by String, case-sensitive)
// back into a Role.
func ParseRole(s string) (Role, bool) {
	for r := RoleDisabled; r <= RoleLeader; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return RoleDisabled, false
}
