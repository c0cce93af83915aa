package postgres

import (
	"errors"
	"testing"
	"time"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestShoppingListMapping_KeepsOrderAndMissingItems(t *testing.T) {
	supermarketID := uuid.New()
	list := &entity.ShoppingList{
		UserID:    uuid.New(),
		UserEmail: "shopper@example.com",
		City:      "Springfield",
		Items: []entity.PricedItem{
			{ProductID: uuid.New(), ProductName: "Milk", Quantity: 2, SupermarketID: supermarketID, SupermarketName: "Corner", UnitPrice: decimal.RequireFromString("3.00"), Subtotal: decimal.RequireFromString("6.00"), Found: true},
			{ProductID: uuid.New(), ProductName: "missing", Quantity: 1, SupermarketName: entity.MissingSupermarketName, Found: false},
		},
		Total: decimal.RequireFromString("6.00"),
	}

	listM := fromShoppingListDomain(list)
	require.Len(t, listM.Items, 2)
	assert.Equal(t, 0, listM.Items[0].Position)
	assert.Equal(t, 1, listM.Items[1].Position)
	require.NotNil(t, listM.Items[0].SupermarketID)
	assert.Nil(t, listM.Items[1].SupermarketID)

	back := toShoppingListDomain(listM)
	assert.Equal(t, list.Items, back.Items)
	assert.True(t, list.Total.Equal(back.Total))
}

func TestUserMapping_RoundTripsProfile(t *testing.T) {
	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	age := 36
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleVerified,
		Profile: &entity.UserProfile{
			UserID:      uuid.New(),
			FirstName:   "Ada",
			Addresses:   []entity.ProfileAddress{{Address: "742 Evergreen Terrace", City: "Springfield"}},
			DateOfBirth: &dob,
			Age:         &age,
		},
	}

	back := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user.Role, back.Role)
	assert.Equal(t, user.Profile.Addresses, back.Profile.Addresses)
	assert.Equal(t, &age, back.Profile.Age)
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert or update on table "inventory" violates foreign key constraint (SQLSTATE 23503)`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
}
