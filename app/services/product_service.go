package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/repositories"
)

// ProductService holds the product use cases. It knows nothing about HTTP.
type ProductService struct {
	products repositories.ProductRepository
}

func NewProductService(products repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns every product ordered by id.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	return products, nil
}

// Get returns the product with its items, or repositories.ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id uint) (models.Product, error) {
	p, err := s.products.Find(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("products: get %d: %w", id, err)
	}
	return p, nil
}

// New returns an unsaved, empty product for the create form.
func (s *ProductService) New() models.Product {
	return models.Product{}
}

// Create validates attrs and persists a new product. On a validation failure
// nothing is written and the error is a *validate.Error.
func (s *ProductService) Create(ctx context.Context, attrs Attributes) (models.Product, error) {
	p := s.New()
	if err := assignProduct(&p, attrs); err != nil {
		return p, err
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return p, fmt.Errorf("products: create: %w", err)
	}
	return p, nil
}

// Update applies the supplied attrs to the stored product. On a validation
// failure the stored product is returned unchanged alongside the error.
func (s *ProductService) Update(ctx context.Context, id uint, attrs Attributes) (models.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	next := current
	if err := assignProduct(&next, attrs); err != nil {
		return current, err
	}
	if err := s.products.Update(ctx, &next); err != nil {
		return current, fmt.Errorf("products: update %d: %w", id, err)
	}
	return next, nil
}

// Destroy deletes the product and all of its items.
func (s *ProductService) Destroy(ctx context.Context, id uint) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("products: destroy %d: %w", id, err)
	}
	return nil
}

func assignProduct(p *models.Product, attrs Attributes) error {
	attrs.assignString("name", &p.Name)
	attrs.assignString("description", &p.Description)
	attrs.assignString("category", &p.Category)
	attrs.assignString("sku", &p.SKU)

	notNumbers := map[string]bool{}
	if !attrs.assignMoney("wholesale", &p.Wholesale) {
		notNumbers["wholesale"] = true
	}
	if !attrs.assignMoney("retail", &p.Retail) {
		notNumbers["retail"] = true
	}

	return withNumberErrors(p.Validate(), notNumbers)
}
