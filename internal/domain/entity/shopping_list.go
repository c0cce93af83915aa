package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for subtotals and totals.
const MoneyPlaces = 2

// MaxQuantity is the largest quantity a shopping list line accepts; it matches the INTEGER quantity column.
const MaxQuantity = math.MaxInt32

// MissingSupermarketName is shown on lines whose product has no in-stock listing in the city.
const MissingSupermarketName = "N/A"

// ShoppingRequestItem is one requested product and quantity.
type ShoppingRequestItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// PricedItem is a requested product resolved against its cheapest listing.
type PricedItem struct {
	ProductID       uuid.UUID
	ProductName     string
	Quantity        int
	SupermarketID   uuid.UUID // uuid.Nil when the product was not found.
	SupermarketName string
	UnitPrice       decimal.Decimal
	Subtotal        decimal.Decimal
	Found           bool
}

// ShoppingList is a priced list for one city.
type ShoppingList struct {
	ID        uuid.UUID // uuid.Nil when the list was not persisted.
	UserID    uuid.UUID
	UserEmail string
	City      string
	Items     []PricedItem
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Subtotal returns price × quantity rounded half away from zero to two places.
func Subtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyPlaces)
}

// Total sums already-rounded subtotals and rounds the result.
func Total(items []PricedItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	return total.Round(MoneyPlaces)
}

// NewPricedItem prices a request item against a listing.
func NewPricedItem(item ShoppingRequestItem, listing *Listing) PricedItem {
	return PricedItem{
		ProductID:       item.ProductID,
		ProductName:     listing.ProductName,
		Quantity:        item.Quantity,
		SupermarketID:   listing.SupermarketID,
		SupermarketName: listing.SupermarketName,
		UnitPrice:       listing.Price,
		Subtotal:        Subtotal(listing.Price, item.Quantity),
		Found:           true,
	}
}

// NewMissingItem builds the zero-priced placeholder for a product with no in-stock listing in city.
func NewMissingItem(item ShoppingRequestItem, city string) PricedItem {
	return PricedItem{
		ProductID:       item.ProductID,
		ProductName:     fmt.Sprintf("Product with ID %s not found in %s", item.ProductID, city),
		Quantity:        item.Quantity,
		SupermarketName: MissingSupermarketName,
		UnitPrice:       decimal.Zero,
		Subtotal:        decimal.Zero,
		Found:           false,
	}
}
