// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the access tier a user holds in the system.
type Role string

const (
	// RoleBasic is assigned on registration.
	RoleBasic Role = "BASIC"
	// RoleVerified is granted once the user completes a profile.
	RoleVerified Role = "VERIFIED"
	// RoleAdmin manages supermarkets, inventory removal and other accounts.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBasic, RoleVerified, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a set of roles; an operation accepts a principal whose role is a member.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Principal is the verified identity extracted from a token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
