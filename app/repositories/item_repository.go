package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/orm"
)

// ItemRepository persists items. Every lookup is scoped to a product.
type ItemRepository interface {
	FindForProduct(ctx context.Context, productID, id uint) (models.Item, error)
	Create(ctx context.Context, it *models.Item) error
	Update(ctx context.Context, it *models.Item) error
	Delete(ctx context.Context, productID, id uint) error
}

type itemRepository struct {
	q *orm.Query
}

// NewItemRepository returns a gorm-backed ItemRepository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{q: orm.New(db)}
}

// FindForProduct returns ErrNotFound when the item does not exist or belongs
// to another product.
func (r *itemRepository) FindForProduct(ctx context.Context, productID, id uint) (models.Item, error) {
	var it models.Item
	err := r.q.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&it, id)
	return it, err
}

func (r *itemRepository) Create(ctx context.Context, it *models.Item) error {
	return r.q.WithContext(ctx).Create(it)
}

func (r *itemRepository) Update(ctx context.Context, it *models.Item) error {
	return r.q.WithContext(ctx).Save(it)
}

func (r *itemRepository) Delete(ctx context.Context, productID, id uint) error {
	return r.q.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.Item{}, id)
}
