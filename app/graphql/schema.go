// Package graphql exposes products and items through a read-only GraphQL
// schema.
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/repositories"
	"github.com/shashiranjanraj/stockroom/app/resources"
	"github.com/shashiranjanraj/stockroom/app/services"
	gql "github.com/shashiranjanraj/stockroom/pkg/graphql"
)

var itemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Item",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: item(func(i models.Item) any { return i.ID })},
		"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: item(func(i models.Item) any { return i.ProductID })},
		"size":      &graphql.Field{Type: graphql.String, Resolve: item(func(i models.Item) any { return i.Size })},
		"color":     &graphql.Field{Type: graphql.String, Resolve: item(func(i models.Item) any { return i.Color })},
		"status":    &graphql.Field{Type: graphql.String, Resolve: item(func(i models.Item) any { return i.Status })},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID), Resolve: product(func(p models.Product) any { return p.ID })},
		"name":        &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return p.Name })},
		"description": &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return p.Description })},
		"category":    &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return p.Category })},
		"sku":         &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return p.SKU })},
		"wholesale":   &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return price(p.Wholesale.Valid, p.Wholesale.Decimal.StringFixed(2)) })},
		"retail":      &graphql.Field{Type: graphql.String, Resolve: product(func(p models.Product) any { return price(p.Retail.Valid, p.Retail.Decimal.StringFixed(2)) })},
		"margin":      &graphql.Field{Type: graphql.Float, Resolve: product(margin)},
		"sellThrough": &graphql.Field{Type: graphql.NewNonNull(graphql.Float), Resolve: product(func(p models.Product) any { return p.SellThrough() })},
		"items":       &graphql.Field{Type: graphql.NewList(itemType), Resolve: product(func(p models.Product) any { return p.Items })},
	},
})

// NewSchema builds the query root over the product and item services.
func NewSchema(products *services.ProductService, items *services.ItemService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return products.List(p.Context)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, ok := argID(p.Args, "id")
					if !ok {
						return nil, nil
					}
					return found(products.Get(p.Context, id))
				},
			},
			"item": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					productID, ok1 := argID(p.Args, "productId")
					id, ok2 := argID(p.Args, "id")
					if !ok1 || !ok2 {
						return nil, nil
					}
					_, it, err := items.Get(p.Context, productID, id)
					return found(it, err)
				},
			},
		},
	})
	return gql.NewSchema(query)
}

// found maps a not-found lookup to a null result.
func found[T any](v T, err error) (any, error) {
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func product(get func(models.Product) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if v, ok := p.Source.(models.Product); ok {
			return get(v), nil
		}
		return nil, nil
	}
}

func item(get func(models.Item) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if v, ok := p.Source.(models.Item); ok {
			return get(v), nil
		}
		return nil, nil
	}
}

func margin(p models.Product) any {
	if m := resources.Margin(p); m != nil {
		return *m
	}
	return nil
}

func price(valid bool, s string) any {
	if !valid {
		return nil
	}
	return s
}
