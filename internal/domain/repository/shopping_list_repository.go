package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShoppingListNotFound is returned when a saved list is not found.
var ErrShoppingListNotFound = errors.New("shopping list not found")

// ShoppingListRepository persists computed shopping lists with their items.
type ShoppingListRepository interface {
	// Create stores the list and its items, assigning IDs and CreatedAt.
	Create(ctx context.Context, list *entity.ShoppingList) error

	// FindByID returns a list with its items in their original order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)

	// ListByUser returns the lists of one user, newest first, items included.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)
}
