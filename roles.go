package auth

// Role is the authorization tier attached to an identity. The server is the
// sole source of truth for it; the client never mutates it after login/restore.
type Role string

const (
	// RoleDefault is the base tier (i.e. view own records)
	RoleDefault Role = "default"
	// RoleUser is a regular employee account (i.e. view listings)
	RoleUser Role = "user"
	// RoleAdmin may create, edit, and delete employee records
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleDefault, RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants admin-gated actions.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsAtLeast checks if this role meets the minimum required level
func (r Role) IsAtLeast(minRole Role) bool {
	roleHierarchy := map[Role]int{
		RoleDefault: 0,
		RoleUser:    1,
		RoleAdmin:   2,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []Role {
	return []Role{
		RoleDefault,
		RoleUser,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
