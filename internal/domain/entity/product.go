package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item that supermarkets list at their own price.
type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Comments  string
	CreatedBy string // Email of the creating user.
	UpdatedBy string // Email of the last user to modify the product.
	CreatedAt time.Time
	UpdatedAt time.Time
}
