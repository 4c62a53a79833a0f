package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/repositories"
)

// ItemService holds the item use cases. Every call is scoped to a parent
// product; a missing parent is reported as repositories.ErrNotFound.
type ItemService struct {
	products repositories.ProductRepository
	items    repositories.ItemRepository
}

func NewItemService(products repositories.ProductRepository, items repositories.ItemRepository) *ItemService {
	return &ItemService{products: products, items: items}
}

// New returns the parent product and an unsaved item bound to it.
func (s *ItemService) New(ctx context.Context, productID uint) (models.Product, models.Item, error) {
	p, err := s.parent(ctx, productID)
	if err != nil {
		return models.Product{}, models.Item{}, err
	}
	return p, models.Item{ProductID: p.ID}, nil
}

// Get returns the parent product and the item, which must belong to it.
func (s *ItemService) Get(ctx context.Context, productID, id uint) (models.Product, models.Item, error) {
	p, err := s.parent(ctx, productID)
	if err != nil {
		return models.Product{}, models.Item{}, err
	}
	it, err := s.items.FindForProduct(ctx, productID, id)
	if err != nil {
		return models.Product{}, models.Item{}, fmt.Errorf("items: get %d/%d: %w", productID, id, err)
	}
	return p, it, nil
}

// Create validates attrs and persists a new item under the product.
func (s *ItemService) Create(ctx context.Context, productID uint, attrs Attributes) (models.Item, error) {
	_, it, err := s.New(ctx, productID)
	if err != nil {
		return models.Item{}, err
	}

	assignItem(&it, attrs)
	if err := it.Validate(); err != nil {
		return it, err
	}
	if err := s.items.Create(ctx, &it); err != nil {
		return it, fmt.Errorf("items: create: %w", err)
	}
	return it, nil
}

// Update applies the supplied attrs. On a validation failure the stored item
// is returned unchanged alongside the error.
func (s *ItemService) Update(ctx context.Context, productID, id uint, attrs Attributes) (models.Item, error) {
	_, current, err := s.Get(ctx, productID, id)
	if err != nil {
		return models.Item{}, err
	}

	next := current
	assignItem(&next, attrs)
	if err := next.Validate(); err != nil {
		return current, err
	}
	if err := s.items.Update(ctx, &next); err != nil {
		return current, fmt.Errorf("items: update %d/%d: %w", productID, id, err)
	}
	return next, nil
}

// Destroy deletes the item from the product.
func (s *ItemService) Destroy(ctx context.Context, productID, id uint) error {
	if _, err := s.parent(ctx, productID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, productID, id); err != nil {
		return fmt.Errorf("items: destroy %d/%d: %w", productID, id, err)
	}
	return nil
}

func (s *ItemService) parent(ctx context.Context, productID uint) (models.Product, error) {
	p, err := s.products.Find(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("items: product %d: %w", productID, err)
	}
	return p, nil
}

func assignItem(it *models.Item, attrs Attributes) {
	attrs.assignString("size", &it.Size)
	attrs.assignString("color", &it.Color)
	attrs.assignString("status", &it.Status)
}
