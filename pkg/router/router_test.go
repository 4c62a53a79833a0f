package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(r.Method + " " + chi.URLParam(r, "id")))
}

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	products := r.Group("/products")
	products.Get("/{id}", "products.show", ok)
	products.Group("/{productID}/items").Get("/{id}/edit", "items.edit", ok)

	u, err := r.URL("products.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/products/7", u)

	u, err = r.URL("items.edit", map[string]string{"productID": "7", "id": "3"})
	require.NoError(t, err)
	assert.Equal(t, "/products/7/items/3/edit", u)

	_, err = r.URL("items.edit", map[string]string{"id": "3"})
	assert.ErrorContains(t, err, "missing parameters")

	_, err = r.URL("nope", nil)
	assert.ErrorContains(t, err, "not found")
}

func TestVerbs(t *testing.T) {
	r := router.New()
	r.Put("/things/{id}", "things.update", ok)
	r.Patch("/things/{id}", "things.update", ok)
	r.Delete("/things/{id}", "things.destroy", ok)

	for _, m := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(m, "/things/5", nil))
		assert.Equal(t, m+" 5", rec.Body.String())
	}

	routes := r.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, router.RouteInfo{Method: http.MethodDelete, Path: "/things/{id}", Name: "things.destroy"}, routes[2])
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	g := r.Group("/a", mw("outer")).Group("/b", mw("inner"))
	g.Get("/", "ab", ok, mw("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a/b", nil))
	assert.Equal(t, []string{"outer", "inner", "route"}, order)
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
