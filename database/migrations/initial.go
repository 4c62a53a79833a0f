package migrations

import (
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000001_create_items_table", &CreateItemsTable{})
}

// -------- 0001: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: items --------

type CreateItemsTable struct{}

func (m *CreateItemsTable) Up(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		return err
	}
	// sqlite cannot add constraints to an existing table; product deletes
	// remove their items explicitly on every driver anyway.
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	if db.Migrator().HasConstraint(&models.Product{}, "Items") {
		return nil
	}
	return db.Migrator().CreateConstraint(&models.Product{}, "Items")
}

func (m *CreateItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("items")
}
