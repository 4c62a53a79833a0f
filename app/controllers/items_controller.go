package controllers

import (
	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/resources"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/app/views"
	"github.com/shashiranjanraj/stockroom/pkg/bind"
	"github.com/shashiranjanraj/stockroom/pkg/ctx"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

// ItemsController serves items nested under their product. Every action is
// a 404 when the product is missing or does not own the item.
type ItemsController struct {
	base
	items *services.ItemService
}

// NewItemsController builds the controller. urls resolves named routes for
// redirects.
func NewItemsController(items *services.ItemService, v *views.Views, urls views.URLBuilder) *ItemsController {
	return &ItemsController{base: base{views: v, urls: urls}, items: items}
}

// New displays an empty item form for the product.
func (ic *ItemsController) New(c *ctx.Context) {
	productID, ok := c.ParamID("productID")
	if !ok {
		ic.NotFound(c)
		return
	}
	p, it, err := ic.items.New(c.Context(), productID)
	if err != nil {
		ic.fail(c, err)
		return
	}
	ic.render(c, "items/new", "New item", p, it)
}

// Show displays one item with its product.
func (ic *ItemsController) Show(c *ctx.Context) {
	p, it, ok := ic.find(c)
	if !ok {
		return
	}
	ic.render(c, "items/show", p.Name+" item", p, it)
}

// Edit displays the form for an existing item.
func (ic *ItemsController) Edit(c *ctx.Context) {
	p, it, ok := ic.find(c)
	if !ok {
		return
	}
	ic.render(c, "items/edit", "Editing item", p, it)
}

// Create persists an item under the product from the submitted attributes.
func (ic *ItemsController) Create(c *ctx.Context) {
	productID, ok := c.ParamID("productID")
	if !ok {
		ic.NotFound(c)
		return
	}
	attrs, err := bind.Attributes(c.R, "item", services.ItemFields...)
	if err != nil {
		ic.fail(c, err)
		return
	}

	it, err := ic.items.Create(c.Context(), productID, attrs)
	if err == nil {
		c.Logger().Info("item created", "product_id", productID, "item_id", it.ID)
	}
	ic.mutated(c, "item", "create", err,
		ic.url(c, "items.new", "productID", productID),
		ic.url(c, "items.show", "productID", productID, "id", it.ID),
		"Successfully added item")
}

// Update applies the supplied attributes to an item.
func (ic *ItemsController) Update(c *ctx.Context) {
	productID, id, ok := ic.ids(c)
	if !ok {
		return
	}
	attrs, err := bind.Attributes(c.R, "item", services.ItemFields...)
	if err != nil {
		ic.fail(c, err)
		return
	}

	_, err = ic.items.Update(c.Context(), productID, id, attrs)
	if err == nil {
		c.Logger().Info("item updated", "product_id", productID, "item_id", id)
	}
	ic.mutated(c, "item", "update", err,
		ic.url(c, "items.edit", "productID", productID, "id", id),
		ic.url(c, "items.show", "productID", productID, "id", id),
		"Successfully updated item.")
}

// Destroy deletes an item and returns to its product.
func (ic *ItemsController) Destroy(c *ctx.Context) {
	productID, id, ok := ic.ids(c)
	if !ok {
		return
	}

	err := ic.items.Destroy(c.Context(), productID, id)
	if err == nil {
		c.Logger().Info("item destroyed", "product_id", productID, "item_id", id)
	}
	back := ic.url(c, "products.show", "id", productID)
	ic.mutated(c, "item", "destroy", err, back, back, "Successfully deleted item.")
}

func (ic *ItemsController) render(c *ctx.Context, page, title string, p models.Product, it models.Item) {
	if c.WantsJSON() {
		resource.New[models.Item](resources.ItemResource{}, it).Respond(c.W)
		return
	}
	ic.page(c, page, views.Page{Title: title, Product: p, Item: it, Statuses: models.Statuses})
}

func (ic *ItemsController) ids(c *ctx.Context) (productID, id uint, ok bool) {
	productID, ok1 := c.ParamID("productID")
	id, ok2 := c.ParamID("id")
	if !ok1 || !ok2 {
		ic.NotFound(c)
		return 0, 0, false
	}
	return productID, id, true
}

func (ic *ItemsController) find(c *ctx.Context) (models.Product, models.Item, bool) {
	productID, id, ok := ic.ids(c)
	if !ok {
		return models.Product{}, models.Item{}, false
	}
	p, it, err := ic.items.Get(c.Context(), productID, id)
	if err != nil {
		ic.fail(c, err)
		return models.Product{}, models.Item{}, false
	}
	return p, it, true
}
