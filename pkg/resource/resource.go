// Package resource shapes models into the maps served by JSON endpoints.
//
//	type ProductResource struct{}
//	func (ProductResource) ToArray(p models.Product) resource.Map { ... }
//
//	resource.New[models.Product](ProductResource{}, product).Respond(w)
//	resource.Collection[models.Product](ProductResource{}, products).Respond(w)
package resource

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/stockroom/pkg/collection"
	"github.com/shashiranjanraj/stockroom/pkg/response"
)

// Map is the output of a transformer.
type Map = map[string]any

// Transformer converts one model into its public shape.
type Transformer[T any] interface {
	ToArray(v T) Map
}

// ------------------- Single resource -------------------

// Resource pairs one model with its transformer.
type Resource[T any] struct {
	transformer Transformer[T]
	data        T
	meta        Map
}

// New creates a Resource for a single model.
func New[T any](t Transformer[T], data T) *Resource[T] {
	return &Resource[T]{transformer: t, data: data}
}

// WithMeta attaches metadata to the response envelope.
func (r *Resource[T]) WithMeta(meta Map) *Resource[T] {
	r.meta = meta
	return r
}

// MarshalJSON lets a Resource be nested in another map.
func (r *Resource[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.transformer.ToArray(r.data))
}

// Respond writes the resource with the given status, 200 by default.
func (r *Resource[T]) Respond(w http.ResponseWriter, status ...int) {
	out := Map{"data": r.transformer.ToArray(r.data)}
	if r.meta != nil {
		out["meta"] = r.meta
	}
	response.JSON(w, code(status), out)
}

// ------------------- Collection -------------------

// List pairs a slice of models with a transformer.
type List[T any] struct {
	transformer Transformer[T]
	items       []T
	meta        Map
}

// Collection creates a List.
func Collection[T any](t Transformer[T], items []T) *List[T] {
	return &List[T]{transformer: t, items: items}
}

// WithMeta attaches metadata to the response envelope.
func (c *List[T]) WithMeta(meta Map) *List[T] {
	c.meta = meta
	return c
}

// ToArray transforms every item. An empty input gives an empty, non-nil slice.
func (c *List[T]) ToArray() []Map {
	return collection.Map(c.items, c.transformer.ToArray)
}

// MarshalJSON lets a List be nested in another map.
func (c *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToArray())
}

// Respond writes the collection with status 200.
func (c *List[T]) Respond(w http.ResponseWriter) {
	out := Map{"data": c.ToArray()}
	if c.meta != nil {
		out["meta"] = c.meta
	}
	response.JSON(w, http.StatusOK, out)
}

func code(status []int) int {
	if len(status) > 0 {
		return status[0]
	}
	return http.StatusOK
}
