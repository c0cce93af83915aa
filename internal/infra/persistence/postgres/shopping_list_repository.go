package postgres

import (
	"context"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository is the constructor for shoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) repository.ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the list and its items; items keep their slice order through Position.
func (repo *shoppingListRepository) Create(ctx context.Context, list *entity.ShoppingList) error {
	listM := fromShoppingListDomain(list)

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping list")
	}

	list.ID = listM.ID
	list.CreatedAt = listM.CreatedAt

	return nil
}

func (repo *shoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	var listM model.ShoppingListModel
	err := repo.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("id = ?", id).
		First(&listM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoppingListNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shopping list")
	}

	return toShoppingListDomain(&listM), nil
}

// ListByUser returns the saved lists of userID, newest first.
func (repo *shoppingListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	var listMs []*model.ShoppingListModel
	err := repo.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shopping lists")
	}

	lists := make([]*entity.ShoppingList, 0, len(listMs))
	for _, listM := range listMs {
		lists = append(lists, toShoppingListDomain(listM))
	}

	return lists, nil
}

func fromShoppingListDomain(data *entity.ShoppingList) *model.ShoppingListModel {
	items := make([]model.ShoppingListItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		itemM := model.ShoppingListItemModel{
			Position:        i,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			SupermarketName: item.SupermarketName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			Subtotal:        item.Subtotal,
			Found:           item.Found,
		}
		if item.SupermarketID != uuid.Nil {
			supermarketID := item.SupermarketID
			itemM.SupermarketID = &supermarketID
		}
		items = append(items, itemM)
	}

	return &model.ShoppingListModel{
		ID:        data.ID,
		UserID:    data.UserID,
		UserEmail: data.UserEmail,
		City:      data.City,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		Items:     items,
	}
}

func toShoppingListDomain(data *model.ShoppingListModel) *entity.ShoppingList {
	items := make([]entity.PricedItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		item := entity.PricedItem{
			ProductID:       itemM.ProductID,
			ProductName:     itemM.ProductName,
			Quantity:        itemM.Quantity,
			SupermarketName: itemM.SupermarketName,
			UnitPrice:       itemM.UnitPrice,
			Subtotal:        itemM.Subtotal,
			Found:           itemM.Found,
		}
		if itemM.SupermarketID != nil {
			item.SupermarketID = *itemM.SupermarketID
		}
		items = append(items, item)
	}

	return &entity.ShoppingList{
		ID:        data.ID,
		UserID:    data.UserID,
		UserEmail: data.UserEmail,
		City:      data.City,
		Items:     items,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
	}
}
