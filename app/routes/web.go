// Package routes declares every named route of the application.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/stockroom/app/controllers"
	"github.com/shashiranjanraj/stockroom/pkg/ctx"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"github.com/shashiranjanraj/stockroom/pkg/middleware"
	"github.com/shashiranjanraj/stockroom/pkg/router"
)

// Handlers are the endpoints the routes dispatch to.
type Handlers struct {
	Products *controllers.ProductsController
	Items    *controllers.ItemsController
	GraphQL  http.Handler
	Health   http.HandlerFunc
}

// RegisterWeb mounts the HTML/JSON resources plus the operational endpoints.
func RegisterWeb(r *router.Router, h Handlers) {
	pc, ic := h.Products, h.Items

	r.Get("/", "root", ctx.Wrap(pc.Index))

	products := r.Group("/products")
	products.Get("/", "products.index", ctx.Wrap(pc.Index))
	products.Get("/new", "products.new", ctx.Wrap(pc.New))
	products.Post("/", "products.create", ctx.Wrap(pc.Create))
	products.Get("/{id}", "products.show", ctx.Wrap(pc.Show))
	products.Get("/{id}/edit", "products.edit", ctx.Wrap(pc.Edit))
	products.Put("/{id}", "products.update", ctx.Wrap(pc.Update))
	products.Patch("/{id}", "products.update", ctx.Wrap(pc.Update))
	products.Delete("/{id}", "products.destroy", ctx.Wrap(pc.Destroy))

	items := products.Group("/{productID}/items")
	items.Get("/new", "items.new", ctx.Wrap(ic.New))
	items.Post("/", "items.create", ctx.Wrap(ic.Create))
	items.Get("/{id}", "items.show", ctx.Wrap(ic.Show))
	items.Get("/{id}/edit", "items.edit", ctx.Wrap(ic.Edit))
	items.Put("/{id}", "items.update", ctx.Wrap(ic.Update))
	items.Patch("/{id}", "items.update", ctx.Wrap(ic.Update))
	items.Delete("/{id}", "items.destroy", ctx.Wrap(ic.Destroy))

	cors := middleware.CORS(middleware.DefaultCORSOptions())
	r.Get("/graphql", "graphql", h.GraphQL.ServeHTTP, cors)
	r.Post("/graphql", "graphql", h.GraphQL.ServeHTTP, cors)
	r.Options("/graphql", "", h.GraphQL.ServeHTTP, cors)

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "health", h.Health)

	r.NotFound(ctx.Wrap(pc.NotFound))
	r.MethodNotAllowed(ctx.Wrap(func(c *ctx.Context) {
		c.Error(http.StatusMethodNotAllowed, "Method not allowed")
	}))
}
