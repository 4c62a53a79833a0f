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

// ProductsController serves the product pages and their JSON forms.
type ProductsController struct {
	base
	products *services.ProductService
}

// NewProductsController builds the controller. urls resolves named routes for
// redirects.
func NewProductsController(products *services.ProductService, v *views.Views, urls views.URLBuilder) *ProductsController {
	return &ProductsController{base: base{views: v, urls: urls}, products: products}
}

// Index lists every product.
func (pc *ProductsController) Index(c *ctx.Context) {
	products, err := pc.products.List(c.Context())
	if err != nil {
		pc.fail(c, err)
		return
	}
	if c.WantsJSON() {
		resource.Collection[models.Product](resources.ProductResource{}, products).Respond(c.W)
		return
	}
	pc.page(c, "products/index", views.Page{Title: "Products", Products: products})
}

// Show displays one product with its items.
func (pc *ProductsController) Show(c *ctx.Context) {
	p, ok := pc.find(c)
	if !ok {
		return
	}
	if c.WantsJSON() {
		resource.New[models.Product](resources.ProductResource{}, p).Respond(c.W)
		return
	}
	pc.page(c, "products/show", views.Page{Title: p.Name, Product: p})
}

// New displays an empty product form.
func (pc *ProductsController) New(c *ctx.Context) {
	p := pc.products.New()
	if c.WantsJSON() {
		resource.New[models.Product](resources.ProductResource{}, p).Respond(c.W)
		return
	}
	pc.page(c, "products/new", views.Page{Title: "New product", Product: p})
}

// Edit displays the form for an existing product.
func (pc *ProductsController) Edit(c *ctx.Context) {
	p, ok := pc.find(c)
	if !ok {
		return
	}
	if c.WantsJSON() {
		resource.New[models.Product](resources.ProductResource{}, p).Respond(c.W)
		return
	}
	pc.page(c, "products/edit", views.Page{Title: "Editing " + p.Name, Product: p})
}

// Create persists a product from the submitted attributes.
func (pc *ProductsController) Create(c *ctx.Context) {
	attrs, err := bind.Attributes(c.R, "product", services.ProductFields...)
	if err != nil {
		pc.fail(c, err)
		return
	}

	p, err := pc.products.Create(c.Context(), attrs)
	if err == nil {
		c.Logger().Info("product created", "product_id", p.ID, "sku", p.SKU)
	}
	pc.mutated(c, "product", "create", err,
		pc.url(c, "products.new"),
		pc.url(c, "products.show", "id", p.ID),
		"Successfully added product")
}

// Update applies the supplied attributes to a product.
func (pc *ProductsController) Update(c *ctx.Context) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.NotFound(c)
		return
	}
	attrs, err := bind.Attributes(c.R, "product", services.ProductFields...)
	if err != nil {
		pc.fail(c, err)
		return
	}

	p, err := pc.products.Update(c.Context(), id, attrs)
	if err == nil {
		c.Logger().Info("product updated", "product_id", p.ID, "fields", len(attrs))
	}
	pc.mutated(c, "product", "update", err,
		pc.url(c, "products.edit", "id", id),
		pc.url(c, "products.show", "id", id),
		"Successfully updated product.")
}

// Destroy deletes a product and its items.
func (pc *ProductsController) Destroy(c *ctx.Context) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.NotFound(c)
		return
	}

	err := pc.products.Destroy(c.Context(), id)
	if err == nil {
		c.Logger().Info("product destroyed", "product_id", id)
	}
	pc.mutated(c, "product", "destroy", err,
		pc.url(c, "root"),
		pc.url(c, "root"),
		"Successfully deleted product.")
}

func (pc *ProductsController) find(c *ctx.Context) (models.Product, bool) {
	id, ok := c.ParamID("id")
	if !ok {
		pc.NotFound(c)
		return models.Product{}, false
	}
	p, err := pc.products.Get(c.Context(), id)
	if err != nil {
		pc.fail(c, err)
		return models.Product{}, false
	}
	return p, true
}
