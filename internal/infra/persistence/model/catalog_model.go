package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(100)"`
	Comments  string    `gorm:"type:text"`
	CreatedBy string    `gorm:"type:varchar(255)"`
	UpdatedBy string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// SupermarketModel mirrors the 'supermarkets' table.
type SupermarketModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Comments  string    `gorm:"type:text"`
	City      string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupermarketModel) TableName() string {
	return "supermarkets"
}

// InventoryModel mirrors the 'inventory' table, keyed by (supermarket_id, product_id).
type InventoryModel struct {
	SupermarketID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	InStock       bool            `gorm:"not null"`
	CreatedBy     string          `gorm:"type:varchar(255)"`
	UpdatedBy     string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product     *ProductModel     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Supermarket *SupermarketModel `gorm:"foreignKey:SupermarketID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
