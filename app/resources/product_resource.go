// Package resources defines the JSON shapes of products and items.
package resources

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

// ProductResource renders a product with its derived figures and items.
type ProductResource struct{}

func (ProductResource) ToArray(p models.Product) resource.Map {
	return resource.Map{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"category":      p.Category,
		"sku":           p.SKU,
		"wholesale":     money(p.Wholesale),
		"retail":        money(p.Retail),
		"margin":        Margin(p),
		"sell_through":  p.SellThrough(),
		"status_counts": p.StatusCounts(),
		"items":         resource.Collection[models.Item](ItemResource{}, p.Items),
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}

// Margin is the product margin rounded to four places, or nil when it is
// undefined.
func Margin(p models.Product) *float64 {
	m, ok := p.Margin()
	if !ok {
		return nil
	}
	f, _ := m.Round(4).Float64()
	return &f
}

// money renders a price as a two-place string so no precision is lost.
func money(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
