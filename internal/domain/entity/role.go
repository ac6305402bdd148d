// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is what a user may do: order, run the back office, deliver or bake.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleAdmin       Role = "admin"
	RoleDeliveryBoy Role = "delivery_boy"
	RoleVendor      Role = "vendor"
)

// staffRoles are granted by an admin, never through self-registration.
var staffRoles = []Role{RoleAdmin, RoleDeliveryBoy, RoleVendor}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleCustomer || slices.Contains(staffRoles, r)
}

// IsStaffRole reports whether the role can be granted through the staff endpoint.
func (r Role) IsStaffRole() bool {
	return slices.Contains(staffRoles, r)
}

// Roles is the set of roles carried in an access token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasStaffRole reports whether any role is a staff role; staff may read every order.
func (rs Roles) HasStaffRole() bool {
	return slices.ContainsFunc(rs, Role.IsStaffRole)
}

// ToStrings returns the roles as JWT claim values.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses JWT claim values, dropping unknown roles.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			out = append(out, role)
		}
	}

	return out
}
