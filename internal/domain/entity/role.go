// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin is a station administrator, typically the fuel pump owner account.
	RoleAdmin Role = "admin"
	// RoleStaff is a station employee with back-office access.
	RoleStaff Role = "staff"
	// RoleSuperAdmin manages fuel pumps across stations.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
