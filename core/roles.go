package core

import "errors"

// Role is one of the three fixed principal kinds. Each role has its own
// dashboard scope and notification feed; there is no fourth kind.
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
	RoleAMUStaff   Role = "amu-staff"
)

var ErrUnknownRole = errors.New("unknown role")

// Roles returns all known roles in a stable order.
func Roles() []Role {
	return []Role{RoleInstructor, RoleAdmin, RoleAMUStaff}
}

func ParseRole(s string) (Role, error) {
	switch r := Role(CleanString(s, true)); r {
	case RoleInstructor, RoleAdmin, RoleAMUStaff:
		return r, nil
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	switch r {
	case RoleInstructor, RoleAdmin, RoleAMUStaff:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
