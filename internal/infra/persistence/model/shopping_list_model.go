package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingListModel mirrors the 'shopping_lists' table.
type ShoppingListModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserEmail string          `gorm:"type:varchar(255);not null"`
	City      string          `gorm:"type:varchar(100);not null"`
	Total     decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time

	Items []ShoppingListItemModel `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ShoppingListItemModel mirrors the 'shopping_list_items' table. Position keeps input order.
type ShoppingListItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShoppingListID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	SupermarketID   *uuid.UUID      `gorm:"type:uuid"`
	SupermarketName string          `gorm:"type:varchar(255);not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Subtotal        decimal.Decimal `gorm:"type:numeric;not null"`
	Found           bool            `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
