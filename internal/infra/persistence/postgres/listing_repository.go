package postgres

import (
	"context"
	"time"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const listingColumns = "inventory.supermarket_id, inventory.product_id, inventory.price, inventory.in_stock, " +
	"inventory.created_by, inventory.updated_by, inventory.created_at, inventory.updated_at, " +
	"products.name AS product_name, supermarkets.name AS supermarket_name, supermarkets.city AS city"

// listingRow is an inventory row joined with its product and supermarket.
type listingRow struct {
	SupermarketID   uuid.UUID
	ProductID       uuid.UUID
	Price           decimal.Decimal
	InStock         bool
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ProductName     string
	SupermarketName string
	City            string
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("inventory").
		Select(listingColumns).
		Joins("JOIN products ON products.id = inventory.product_id").
		Joins("JOIN supermarkets ON supermarkets.id = inventory.supermarket_id")
}

// FindListings returns matching listings ordered by price, then supermarket ID.
func (repo *listingRepository) FindListings(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	query := repo.joined(ctx)
	if filter.ProductID != uuid.Nil {
		query = query.Where("inventory.product_id = ?", filter.ProductID)
	}
	if filter.City != "" {
		query = query.Where("supermarkets.city = ?", filter.City)
	}
	if filter.InStockOnly {
		query = query.Where("inventory.in_stock = ?", true)
	}

	var rows []listingRow
	if err := query.Order("inventory.price ASC, inventory.supermarket_id ASC").Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listings")
	}

	listings := make([]*entity.Listing, 0, len(rows))
	for i := range rows {
		listings = append(listings, toListingDomain(&rows[i]))
	}

	return listings, nil
}

func (repo *listingRepository) Find(ctx context.Context, supermarketID, productID uuid.UUID) (*entity.Listing, error) {
	var rows []listingRow
	err := repo.joined(ctx).
		Where("inventory.supermarket_id = ? AND inventory.product_id = ?", supermarketID, productID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find listing")
	}
	if len(rows) == 0 {
		return nil, repository.ErrListingNotFound
	}

	return toListingDomain(&rows[0]), nil
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	inventoryM := &model.InventoryModel{
		SupermarketID: listing.SupermarketID,
		ProductID:     listing.ProductID,
		Price:         listing.Price,
		InStock:       listing.InStock,
		CreatedBy:     listing.CreatedBy,
		UpdatedBy:     listing.UpdatedBy,
	}

	if err := repo.db.WithContext(ctx).Omit("Product", "Supermarket").Create(inventoryM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrListingAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return repository.ErrListingReferenceNotFound
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
		}
	}

	listing.CreatedAt = inventoryM.CreatedAt
	listing.UpdatedAt = inventoryM.UpdatedAt

	return nil
}

func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("supermarket_id = ? AND product_id = ?", listing.SupermarketID, listing.ProductID).
		Updates(map[string]any{
			"price":      listing.Price,
			"in_stock":   listing.InStock,
			"updated_by": listing.UpdatedBy,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	listing.UpdatedAt = now

	return nil
}

func (repo *listingRepository) Delete(ctx context.Context, supermarketID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("supermarket_id = ? AND product_id = ?", supermarketID, productID).
		Delete(&model.InventoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func toListingDomain(row *listingRow) *entity.Listing {
	return &entity.Listing{
		ProductID:       row.ProductID,
		SupermarketID:   row.SupermarketID,
		Price:           row.Price,
		InStock:         row.InStock,
		ProductName:     row.ProductName,
		SupermarketName: row.SupermarketName,
		City:            row.City,
		CreatedBy:       row.CreatedBy,
		UpdatedBy:       row.UpdatedBy,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
