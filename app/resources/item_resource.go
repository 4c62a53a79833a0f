package resources

import (
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

// ItemResource renders one item.
type ItemResource struct{}

func (ItemResource) ToArray(i models.Item) resource.Map {
	return resource.Map{
		"id":         i.ID,
		"product_id": i.ProductID,
		"size":       i.Size,
		"color":      i.Color,
		"status":     i.Status,
		"created_at": i.CreatedAt,
		"updated_at": i.UpdatedAt,
	}
}
