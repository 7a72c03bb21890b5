package types

// Role identifies a capability set a caller must hold on a vault.
type Role int

const (
	// RoleOwner is the single default admin of a vault. It administers the
	// admin set, pausing, the fee receiver and bootstrapping.
	RoleOwner Role = iota + 1
	// RoleAdmin is held by any number of accounts. It manages allocations and fees.
	RoleAdmin
)

// String returns the lowercase role name used in errors and events.
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
