// Package policy holds the role-based authorization rules.
// Each operation enumerates the roles it accepts; no hierarchy between roles is implied.
package policy

import (
	"strings"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// Per-operation role sets.
var (
	// ProductWrite gates creating, updating and deleting products.
	ProductWrite = entity.Roles{entity.RoleVerified, entity.RoleAdmin}

	// SupermarketRead gates listing and fetching supermarkets.
	SupermarketRead = entity.Roles{entity.RoleBasic, entity.RoleVerified, entity.RoleAdmin}

	// SupermarketWrite gates creating, updating and deleting supermarkets.
	SupermarketWrite = entity.Roles{entity.RoleAdmin}

	// InventoryWrite gates creating and updating listings.
	InventoryWrite = entity.Roles{entity.RoleVerified, entity.RoleAdmin}

	// InventoryDelete gates removing listings.
	InventoryDelete = entity.Roles{entity.RoleAdmin}

	// UserAdmin gates acting on another user's account or shopping lists.
	UserAdmin = entity.Roles{entity.RoleAdmin}
)

// Authorize reports whether principal holds one of the required roles.
// A nil principal or an empty role set is always denied.
func Authorize(principal *entity.Principal, required entity.Roles) bool {
	if principal == nil || len(required) == 0 {
		return false
	}

	return required.Contains(principal.Role)
}

// AuthorizeSelfOrRoles allows the account owner, identified by email, or any principal holding one of roles.
func AuthorizeSelfOrRoles(principal *entity.Principal, ownerEmail string, roles entity.Roles) bool {
	if principal == nil {
		return false
	}
	if ownerEmail != "" && strings.EqualFold(principal.Email, ownerEmail) {
		return true
	}

	return Authorize(principal, roles)
}

// AuthorizeOwnerOrRoles allows the resource owner, identified by user ID, or any principal holding one of roles.
func AuthorizeOwnerOrRoles(principal *entity.Principal, ownerID uuid.UUID, roles entity.Roles) bool {
	if principal == nil {
		return false
	}
	if ownerID != uuid.Nil && principal.UserID == ownerID {
		return true
	}

	return Authorize(principal, roles)
}
