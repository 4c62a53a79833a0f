// Package views renders the HTML pages from templates embedded in the
// binary. Each page is parsed together with the layout and the shared
// partials, and executed through the "layout" template.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/app/resources"
	"github.com/shashiranjanraj/stockroom/pkg/flash"
)

//go:embed all:templates
var files embed.FS

// URLBuilder resolves named routes. *router.Router implements it.
type URLBuilder interface {
	URL(name string, params map[string]string) (string, error)
}

// Page is the data every template receives.
type Page struct {
	Title    string
	Flash    flash.Flash
	Products []models.Product
	Product  models.Product
	Item     models.Item
	Statuses []string

	// Status and Message are set on error pages.
	Status  int
	Message string
}

// Views holds one parsed template set per page.
type Views struct {
	pages map[string]*template.Template
}

// New parses every page under templates/. Partials are files whose name
// starts with an underscore.
func New(urls URLBuilder) (*Views, error) {
	funcs := template.FuncMap{
		"route":   routeFunc(urls),
		"money":   money,
		"margin":  margin,
		"percent": percent,
	}

	var pages, partials []string
	err := fs.WalkDir(files, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == "templates/layout.html" {
			return err
		}
		if strings.HasPrefix(d.Name(), "_") {
			partials = append(partials, path)
		} else {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("views: walk: %w", err)
	}

	v := &Views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		patterns := append([]string{"templates/layout.html"}, partials...)
		patterns = append(patterns, page)

		t, err := template.New("layout").Funcs(funcs).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", page, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/"), ".html")
		v.pages[name] = t
	}
	return v, nil
}

// Render executes the named page, e.g. "products/show".
func (v *Views) Render(w io.Writer, name string, data any) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page exists.
func (v *Views) Has(name string) bool {
	_, ok := v.pages[name]
	return ok
}

// routeFunc builds {{ route "items.show" "productID" .ProductID "id" .ID }}.
func routeFunc(urls URLBuilder) func(name string, pairs ...any) (string, error) {
	return func(name string, pairs ...any) (string, error) {
		if len(pairs)%2 != 0 {
			return "", fmt.Errorf("route %q: odd number of parameters", name)
		}
		params := make(map[string]string, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			params[fmt.Sprint(pairs[i])] = fmt.Sprint(pairs[i+1])
		}
		return urls.URL(name, params)
	}
}

func money(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

func margin(p models.Product) string {
	m := resources.Margin(p)
	if m == nil {
		return "n/a"
	}
	return percent(*m)
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
