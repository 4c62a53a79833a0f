// Package kernel assembles the HTTP application: repositories, services,
// controllers, the global middleware stack and the routes.
package kernel

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/app/controllers"
	appgql "github.com/shashiranjanraj/stockroom/app/graphql"
	"github.com/shashiranjanraj/stockroom/app/repositories"
	"github.com/shashiranjanraj/stockroom/app/routes"
	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/app/views"
	"github.com/shashiranjanraj/stockroom/pkg/database"
	"github.com/shashiranjanraj/stockroom/pkg/flash"
	"github.com/shashiranjanraj/stockroom/pkg/graphql"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"github.com/shashiranjanraj/stockroom/pkg/middleware"
	"github.com/shashiranjanraj/stockroom/pkg/reqid"
	"github.com/shashiranjanraj/stockroom/pkg/response"
	"github.com/shashiranjanraj/stockroom/pkg/router"
)

// Deps are the external resources the kernel is built on.
type Deps struct {
	DB    *gorm.DB
	Flash *flash.Store

	// Limiter throttles clients; nil disables rate limiting.
	Limiter middleware.Limiter
}

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel wires the application. Nothing touches the database until a
// request arrives, so a nil DB is enough to list routes.
func NewHTTPKernel(d Deps) (*HTTPKernel, error) {
	r := router.New()

	// Global middleware (outermost first):
	//  1. metrics         total latency
	//  2. recovery        panics become 500s
	//  3. request id      before anything logs
	//  4. logger          request-scoped logger
	//  5. method override _method from HTML forms
	//  6. flash           one-shot messages
	//  7. rate limit      reject abusers
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.MethodOverride)
	if d.Flash != nil {
		r.Use(d.Flash.Middleware())
	}
	if d.Limiter != nil {
		r.Use(middleware.RateLimit(d.Limiter))
	}

	v, err := views.New(r)
	if err != nil {
		return nil, err
	}

	productRepo := repositories.NewProductRepository(d.DB)
	itemRepo := repositories.NewItemRepository(d.DB)
	productService := services.NewProductService(productRepo)
	itemService := services.NewItemService(productRepo, itemRepo)

	schema, err := appgql.NewSchema(productService, itemService)
	if err != nil {
		return nil, fmt.Errorf("kernel: graphql schema: %w", err)
	}

	routes.RegisterWeb(r, routes.Handlers{
		Products: controllers.NewProductsController(productService, v, r),
		Items:    controllers.NewItemsController(itemService, v, r),
		GraphQL:  graphql.Handler(schema),
		Health:   health(d.DB),
	})

	return &HTTPKernel{router: r}, nil
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }

// health reports liveness plus database reachability.
func health(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db == nil {
			response.Error(w, http.StatusServiceUnavailable, "database not configured")
			return
		}
		if err := database.Ping(ctx, db); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, response.Envelope{
				Status:  http.StatusServiceUnavailable,
				Message: "database unreachable",
				Data:    map[string]string{"database": "down"},
			})
			return
		}
		response.Success(w, map[string]string{"status": "ok", "database": "up"})
	}
}
