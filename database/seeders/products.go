package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/app/models"
)

func init() {
	Register("products", SeedProducts)
}

type seedProduct struct {
	name, description, category, sku string
	wholesale, retail                string
	items                            [][3]string // size, color, status
}

var sampleProducts = []seedProduct{
	{
		name: "Oxford Shirt", description: "Button-down oxford cloth shirt", category: "Shirts", sku: "OX-001",
		wholesale: "25.00", retail: "100.00",
		items: [][3]string{
			{"S", "white", models.StatusIn},
			{"M", "white", models.StatusSold},
			{"L", "blue", models.StatusOut},
			{"M", "blue", models.StatusSold},
			{"XL", "white", models.StatusClearanced},
		},
	},
	{
		name: "Chino Trousers", description: "Slim fit cotton chinos", category: "Trousers", sku: "CH-204",
		wholesale: "18.50", retail: "59.00",
		items: [][3]string{
			{"32", "khaki", models.StatusIn},
			{"34", "navy", models.StatusIn},
		},
	},
	{
		name: "Wool Scarf", description: "Lambswool scarf", category: "Accessories", sku: "SC-010",
		wholesale: "9.00", retail: "35.00",
	},
}

// SeedProducts inserts the sample catalogue unless products already exist.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sp := range sampleProducts {
			p := models.Product{
				Name:        sp.name,
				Description: sp.description,
				Category:    sp.category,
				SKU:         sp.sku,
				Wholesale:   decimal.NewNullDecimal(decimal.RequireFromString(sp.wholesale)),
				Retail:      decimal.NewNullDecimal(decimal.RequireFromString(sp.retail)),
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			for _, it := range sp.items {
				item := models.Item{ProductID: p.ID, Size: it[0], Color: it[1], Status: it[2]}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
