package schemas

import "fmt"

// Role is the closed set of user roles. Anything outside the declared
// constants is rejected at validation time.
type Role string

const (
	RoleAnonymous     Role = "ANONYMOUS"
	RoleAuthenticated Role = "AUTHENTICATED"
	RoleManager       Role = "MANAGER"
	RoleAdmin         Role = "ADMIN"
)

// Roles returns all valid role values.
func Roles() []Role {
	return []Role{RoleAnonymous, RoleAuthenticated, RoleManager, RoleAdmin}
}

// roleNames is the string form used by validation rules and error messages.
func roleNames() []string {
	roles := Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// IsValid reports whether r is one of the declared roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAnonymous, RoleAuthenticated, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a raw string into a Role, rejecting empty and
// unrecognized values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
