// Package controllers holds the HTTP actions for products and items.
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/stockroom/app/repositories"
	"github.com/shashiranjanraj/stockroom/app/views"
	"github.com/shashiranjanraj/stockroom/pkg/bind"
	"github.com/shashiranjanraj/stockroom/pkg/ctx"
	"github.com/shashiranjanraj/stockroom/pkg/flash"
	"github.com/shashiranjanraj/stockroom/pkg/metrics"
	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

// Mutation outcomes recorded in metrics.
const (
	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// base carries what every controller needs to answer a request.
type base struct {
	views *views.Views
	urls  views.URLBuilder
}

// page renders an HTML page, attaching the incoming flash.
func (b base) page(c *ctx.Context, name string, p views.Page) {
	p.Flash = c.Flash()
	if err := c.HTML(http.StatusOK, b.views, name, p); err != nil {
		b.serverError(c, err)
	}
}

// url builds a named route. Route names are fixed at compile time, so a
// failure is a programming error and falls back to the root.
func (b base) url(c *ctx.Context, name string, pairs ...any) string {
	params := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params[fmt.Sprint(pairs[i])] = fmt.Sprint(pairs[i+1])
	}
	u, err := b.urls.URL(name, params)
	if err != nil {
		c.Logger().Error("route lookup failed", "route", name, "error", err)
		return "/"
	}
	return u
}

// NotFound answers a miss as HTML or JSON.
func (b base) NotFound(c *ctx.Context) {
	b.errorPage(c, http.StatusNotFound, "The page you were looking for doesn't exist.")
}

func (b base) serverError(c *ctx.Context, err error) {
	c.Logger().Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	b.errorPage(c, http.StatusInternalServerError, "We're sorry, but something went wrong.")
}

func (b base) errorPage(c *ctx.Context, status int, message string) {
	if c.WantsJSON() || b.views == nil {
		c.Error(status, message)
		return
	}
	p := views.Page{Title: http.StatusText(status), Status: status, Message: message}
	if err := c.HTML(status, b.views, "errors/error", p); err != nil {
		c.Logger().Error("error page failed", "error", err)
		c.String(status, "%s", message)
	}
}

// fail maps a service error to its response: 404 for a missed lookup, 400
// for an unreadable body, 500 otherwise.
func (b base) fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		b.NotFound(c)
	case errors.Is(err, bind.ErrMalformed):
		b.errorPage(c, http.StatusBadRequest, err.Error())
	default:
		b.serverError(c, err)
	}
}

// mutated finishes a create, update or destroy. A validation failure sends
// the user back to onInvalid with the joined messages; success goes to
// onSuccess with notice.
func (b base) mutated(c *ctx.Context, resource, action string, err error, onInvalid, onSuccess, notice string) {
	if verr, ok := validate.As(err); ok {
		metrics.RecordMutation(resource, action, outcomeInvalid)
		c.Logger().Info(resource+" "+action+" rejected", "errors", verr.Messages())
		c.RedirectWith(onInvalid, flash.Error(verr.Error()))
		return
	}
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, repositories.ErrNotFound) {
			outcome = outcomeNotFound
		}
		metrics.RecordMutation(resource, action, outcome)
		b.fail(c, err)
		return
	}

	metrics.RecordMutation(resource, action, outcomeSuccess)
	c.RedirectWith(onSuccess, flash.Notice(notice))
}
