package repositories_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/repositories"
	"github.com/shashiranjanraj/stockroom/internal/testdb"
)

func newProduct(sku string) *models.Product {
	return &models.Product{
		Name:        "Shirt " + sku,
		Description: "Cotton shirt",
		Category:    "Shirts",
		SKU:         sku,
		Wholesale:   decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
		Retail:      decimal.NewNullDecimal(decimal.RequireFromString("40.00")),
	}
}

func countItems(t *testing.T, db *gorm.DB, productID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Item{}).Where("product_id = ?", productID).Count(&n).Error)
	return n
}

func TestProductRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewProductRepository(testdb.New(t))

	p := newProduct("A-1")
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.Find(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt A-1", got.Name)
	assert.True(t, got.Retail.Decimal.Equal(decimal.RequireFromString("40")))

	got.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, &got))

	again, err := repo.Find(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Name)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.Find(ctx, p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductRepositoryAllOrderedWithItems(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	products := repositories.NewProductRepository(db)
	items := repositories.NewItemRepository(db)

	first, second := newProduct("A-1"), newProduct("B-2")
	require.NoError(t, products.Create(ctx, first))
	require.NoError(t, products.Create(ctx, second))
	require.NoError(t, items.Create(ctx, &models.Item{ProductID: second.ID, Size: "M", Color: "red", Status: models.StatusSold}))

	all, err := products.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Empty(t, all[0].Items)
	assert.Len(t, all[1].Items, 1)
}

func TestProductRepositoryMissing(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewProductRepository(testdb.New(t))

	_, err := repo.Find(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), repositories.ErrNotFound)
}

func TestProductDeleteRemovesItems(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	products := repositories.NewProductRepository(db)
	items := repositories.NewItemRepository(db)

	p := newProduct("C-3")
	require.NoError(t, products.Create(ctx, p))
	for _, s := range []string{models.StatusIn, models.StatusSold} {
		require.NoError(t, items.Create(ctx, &models.Item{ProductID: p.ID, Size: "S", Color: "black", Status: s}))
	}

	require.NoError(t, products.Delete(ctx, p.ID))

	assert.Zero(t, countItems(t, db, p.ID))
}

func TestItemRepositoryScopedToProduct(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	products := repositories.NewProductRepository(db)
	items := repositories.NewItemRepository(db)

	owner, other := newProduct("D-4"), newProduct("E-5")
	require.NoError(t, products.Create(ctx, owner))
	require.NoError(t, products.Create(ctx, other))

	it := &models.Item{ProductID: owner.ID, Size: "L", Color: "green", Status: models.StatusIn}
	require.NoError(t, items.Create(ctx, it))

	got, err := items.FindForProduct(ctx, owner.ID, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "green", got.Color)

	_, err = items.FindForProduct(ctx, other.ID, it.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, items.Delete(ctx, other.ID, it.ID), repositories.ErrNotFound)

	got.Status = models.StatusSold
	require.NoError(t, items.Update(ctx, &got))
	updated, err := items.FindForProduct(ctx, owner.ID, it.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, updated.Status)

	require.NoError(t, items.Delete(ctx, owner.ID, it.ID))
	assert.Zero(t, countItems(t, db, owner.ID))
}
