package models

import (
	"time"

	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

// Known item statuses. Status is free text; these are the values the
// application itself offers.
const (
	StatusIn         = "in"
	StatusOut        = "out"
	StatusSold       = "sold"
	StatusClearanced = "clearanced"
)

// Statuses lists the known statuses in display order.
var Statuses = []string{StatusIn, StatusOut, StatusSold, StatusClearanced}

// Item is one physical unit of a Product.
type Item struct {
	ID        uint      `gorm:"primaryKey"              json:"id"`
	ProductID uint      `gorm:"not null;index"          json:"product_id"`
	Size      string    `gorm:"size:50;not null"        json:"size"`
	Color     string    `gorm:"size:50;not null"        json:"color"`
	Status    string    `gorm:"size:50;not null;index"  json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate returns a *validate.Error listing every blank attribute, or nil.
// An item without a product fails with "Product must exist".
func (i Item) Validate() error {
	v := validate.New()
	v.Required("size", i.Size)
	v.Required("color", i.Color)
	v.Required("status", i.Status)
	v.RequiredID("product_id", i.ProductID)
	return v.Err()
}

// IsSold reports whether the item counts towards sell-through.
func (i Item) IsSold() bool { return i.Status == StatusSold }
