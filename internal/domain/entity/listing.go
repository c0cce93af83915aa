package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Listing is the price and availability of one product at one supermarket.
// The pair (ProductID, SupermarketID) is unique.
type Listing struct {
	ProductID       uuid.UUID
	SupermarketID   uuid.UUID
	Price           decimal.Decimal // Non-negative, two decimal places.
	InStock         bool
	ProductName     string // Denormalized from the product for display.
	SupermarketName string // Denormalized from the supermarket for display.
	City            string // City of the supermarket.
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
