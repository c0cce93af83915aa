package policy

import (
	"testing"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principal(role entity.Role) *entity.Principal {
	return &entity.Principal{UserID: uuid.New(), Email: "someone@example.com", Role: role}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal *entity.Principal
		required  entity.Roles
		want      bool
	}{
		{name: "basic cannot write products", principal: principal(entity.RoleBasic), required: ProductWrite, want: false},
		{name: "verified can write products", principal: principal(entity.RoleVerified), required: ProductWrite, want: true},
		{name: "admin can write products", principal: principal(entity.RoleAdmin), required: ProductWrite, want: true},
		{name: "verified cannot write supermarkets", principal: principal(entity.RoleVerified), required: SupermarketWrite, want: false},
		{name: "admin can write supermarkets", principal: principal(entity.RoleAdmin), required: SupermarketWrite, want: true},
		{name: "basic can read supermarkets", principal: principal(entity.RoleBasic), required: SupermarketRead, want: true},
		{name: "verified can write inventory", principal: principal(entity.RoleVerified), required: InventoryWrite, want: true},
		{name: "verified cannot delete inventory", principal: principal(entity.RoleVerified), required: InventoryDelete, want: false},
		{name: "nil principal", principal: nil, required: SupermarketRead, want: false},
		{name: "empty role set", principal: principal(entity.RoleAdmin), required: entity.Roles{}, want: false},
		{name: "unknown role", principal: principal(entity.Role("ROOT")), required: SupermarketRead, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.required))
		})
	}
}

func TestAuthorizeSelfOrRoles(t *testing.T) {
	p := principal(entity.RoleBasic)

	assert.True(t, AuthorizeSelfOrRoles(p, "Someone@Example.com", UserAdmin))
	assert.False(t, AuthorizeSelfOrRoles(p, "other@example.com", UserAdmin))
	assert.True(t, AuthorizeSelfOrRoles(principal(entity.RoleAdmin), "other@example.com", UserAdmin))
	assert.False(t, AuthorizeSelfOrRoles(nil, "someone@example.com", UserAdmin))
}

func TestAuthorizeOwnerOrRoles(t *testing.T) {
	p := principal(entity.RoleVerified)

	assert.True(t, AuthorizeOwnerOrRoles(p, p.UserID, UserAdmin))
	assert.False(t, AuthorizeOwnerOrRoles(p, uuid.New(), UserAdmin))
	assert.False(t, AuthorizeOwnerOrRoles(p, uuid.Nil, UserAdmin))
	assert.True(t, AuthorizeOwnerOrRoles(principal(entity.RoleAdmin), uuid.New(), UserAdmin))
}
