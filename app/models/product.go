package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/pkg/collection"
	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

// Product is a catalogue entry. Its Items are the physical units on hand.
type Product struct {
	ID          uint                `gorm:"primaryKey"                     json:"id"`
	Name        string              `gorm:"size:255;not null"              json:"name"`
	Description string              `gorm:"type:text;not null"             json:"description"`
	Category    string              `gorm:"size:255;not null;index"        json:"category"`
	SKU         string              `gorm:"column:sku;size:100;not null"   json:"sku"`
	Wholesale   decimal.NullDecimal `gorm:"type:decimal(10,2);not null"    json:"wholesale"`
	Retail      decimal.NullDecimal `gorm:"type:decimal(10,2);not null"    json:"retail"`
	Items       []Item              `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Validate requires every attribute. Errors are reported in form order.
func (p Product) Validate() error {
	v := validate.New()
	v.Required("name", p.Name)
	v.Required("description", p.Description)
	v.Required("category", p.Category)
	v.Required("sku", p.SKU)
	v.RequiredDecimal("wholesale", p.Wholesale)
	v.RequiredDecimal("retail", p.Retail)
	return v.Err()
}

// Margin is (retail - wholesale) / retail. ok is false when retail is
// missing or zero, since the ratio is undefined there.
func (p Product) Margin() (margin decimal.Decimal, ok bool) {
	if !p.Retail.Valid || p.Retail.Decimal.IsZero() {
		return decimal.Zero, false
	}
	wholesale := p.Wholesale.Decimal // null wholesale counts as zero cost
	return p.Retail.Decimal.Sub(wholesale).Div(p.Retail.Decimal), true
}

// SoldCount is the number of loaded items with status sold.
func (p Product) SoldCount() int {
	return len(collection.Filter(p.Items, Item.IsSold))
}

// SellThrough is sold items over all items as a real ratio in [0, 1].
// A product without items has a sell-through of 0.
func (p Product) SellThrough() float64 {
	if len(p.Items) == 0 {
		return 0
	}
	return float64(p.SoldCount()) / float64(len(p.Items))
}

// StatusCounts groups the loaded items by status.
func (p Product) StatusCounts() map[string]int {
	out := make(map[string]int)
	for status, items := range collection.GroupBy(p.Items, func(i Item) string { return i.Status }) {
		out[status] = len(items)
	}
	return out
}
