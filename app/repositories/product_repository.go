package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/orm"
)

// ErrNotFound is returned when a lookup or delete matches no row.
var ErrNotFound = orm.ErrNotFound

// ProductRepository persists products.
type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, id uint) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	q *orm.Query
}

// NewProductRepository returns a gorm-backed ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{q: orm.New(db)}
}

// All returns every product with its items, ordered by id.
func (r *productRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.q.WithContext(ctx).
		Preload("Items", orderByID).
		Order("id").
		Get(&products)
	return products, err
}

// Find looks up a product by primary key, items included.
func (r *productRepository) Find(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := r.q.WithContext(ctx).
		Preload("Items", orderByID).
		First(&p, id)
	return p, err
}

func (r *productRepository) Create(ctx context.Context, p *models.Product) error {
	return r.q.WithContext(ctx).Create(p)
}

func (r *productRepository) Update(ctx context.Context, p *models.Product) error {
	return r.q.WithContext(ctx).Save(p)
}

// Delete removes the product and its items in one transaction.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.q.WithContext(ctx).Transaction(func(tx *orm.Query) error {
		if err := tx.DeleteWhere(&models.Item{}, "product_id = ?", id); err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id)
	})
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
