package postgres

import (
	"context"
	"time"

	"grocery/internal/domain/entity"
	domainerrors "grocery/internal/domain/errors"
	"grocery/internal/domain/repository"
	"grocery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type supermarketRepository struct {
	db *gorm.DB
}

// NewSupermarketRepository is the constructor for supermarketRepository.
func NewSupermarketRepository(db *gorm.DB) repository.SupermarketRepository {
	return &supermarketRepository{db: db}
}

func (repo *supermarketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supermarket, error) {
	var supermarketM model.SupermarketModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&supermarketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupermarketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find supermarket")
	}

	return toSupermarketDomain(&supermarketM), nil
}

func (repo *supermarketRepository) List(ctx context.Context) ([]*entity.Supermarket, error) {
	var supermarketMs []*model.SupermarketModel
	if err := repo.db.WithContext(ctx).Order("city ASC, name ASC").Find(&supermarketMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list supermarkets")
	}

	supermarkets := make([]*entity.Supermarket, 0, len(supermarketMs))
	for _, supermarketM := range supermarketMs {
		supermarkets = append(supermarkets, toSupermarketDomain(supermarketM))
	}

	return supermarkets, nil
}

func (repo *supermarketRepository) Create(ctx context.Context, supermarket *entity.Supermarket) error {
	supermarketM := fromSupermarketDomain(supermarket)
	if err := repo.db.WithContext(ctx).Create(supermarketM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create supermarket")
	}

	supermarket.ID = supermarketM.ID
	supermarket.CreatedAt = supermarketM.CreatedAt
	supermarket.UpdatedAt = supermarketM.UpdatedAt

	return nil
}

func (repo *supermarketRepository) Update(ctx context.Context, supermarket *entity.Supermarket) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SupermarketModel{}).
		Where("id = ?", supermarket.ID).
		Updates(map[string]any{
			"name":       supermarket.Name,
			"comments":   supermarket.Comments,
			"city":       supermarket.City,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supermarket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupermarketNotFound
	}

	supermarket.UpdatedAt = now

	return nil
}

// Delete removes the supermarket; its listings cascade.
func (repo *supermarketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SupermarketModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supermarket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupermarketNotFound
	}

	return nil
}

func toSupermarketDomain(data *model.SupermarketModel) *entity.Supermarket {
	return &entity.Supermarket{
		ID:        data.ID,
		Name:      data.Name,
		Comments:  data.Comments,
		City:      data.City,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSupermarketDomain(data *entity.Supermarket) *model.SupermarketModel {
	return &model.SupermarketModel{
		ID:        data.ID,
		Name:      data.Name,
		Comments:  data.Comments,
		City:      data.City,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
