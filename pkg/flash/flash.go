// Package flash carries one-shot user feedback across a redirect.
//
// The message rides in an encrypted cookie set on the redirect response. On
// the next request the middleware decodes it, exposes it to the handler and
// expires the cookie, so each message is shown exactly once. Nothing is kept
// on the server.
//
// Usage (middleware):
//
//	r.Use(store.Middleware())
//
// Usage (handler):
//
//	store.Write(w, flash.Notice("Successfully added product"))
//	http.Redirect(w, r, "/products/1", http.StatusFound)
//
//	f := flash.FromCtx(r.Context()) // on the following request
package flash

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/stockroom/config"
	"github.com/shashiranjanraj/stockroom/pkg/crypt"
)

// Flash is the message shown on the page after a redirect.
type Flash struct {
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Notice builds a success flash.
func Notice(msg string) Flash { return Flash{Notice: msg} }

// Error builds a failure flash.
func Error(msg string) Flash { return Flash{Error: msg} }

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool { return f.Notice == "" && f.Error == "" }

// ------------------- Options -------------------

// Options configures the flash cookie.
type Options struct {
	CookieName string
	Path       string
	Secure     bool
	SameSite   http.SameSite
}

// DefaultOptions reads the cookie name from config and marks the cookie
// Secure in production.
func DefaultOptions() Options {
	return Options{
		CookieName: config.FlashCookie(),
		Path:       "/",
		Secure:     config.IsProduction(),
		SameSite:   http.SameSiteLaxMode,
	}
}

// ------------------- Store -------------------

// Store encodes flashes into cookies.
type Store struct {
	opts Options
	box  *crypt.Box
}

func New(box *crypt.Box, opts Options) *Store {
	if opts.CookieName == "" {
		opts.CookieName = "stockroom_flash"
	}
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &Store{opts: opts, box: box}
}

// CookieName returns the configured cookie name.
func (s *Store) CookieName() string { return s.opts.CookieName }

// Write attaches f to the response. Any flash cookie already set on this
// response is replaced, so the last Write wins.
func (s *Store) Write(w http.ResponseWriter, f Flash) error {
	value, err := s.box.EncryptJSON(f)
	if err != nil {
		return err
	}
	s.dropSetCookie(w)
	http.SetCookie(w, s.cookie(value, 0))
	return nil
}

// Read decodes the flash carried by cookies. A missing or tampered cookie
// yields an empty flash.
func (s *Store) Read(cookies []*http.Cookie) (Flash, bool) {
	for _, c := range cookies {
		if c.Name != s.opts.CookieName || c.Value == "" {
			continue
		}
		var f Flash
		if err := s.box.DecryptJSON(c.Value, &f); err != nil {
			return Flash{}, false
		}
		return f, !f.Empty()
	}
	return Flash{}, false
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    value,
		Path:     s.opts.Path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	}
}

func (s *Store) dropSetCookie(w http.ResponseWriter) {
	h := w.Header()
	prefix := s.opts.CookieName + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}

// ------------------- Middleware -------------------

type (
	ctxKey   struct{}
	storeKey struct{}
)

// ErrNoStore is returned by Put outside of Middleware.
var ErrNoStore = errors.New("flash: no store in context")

// Middleware consumes the incoming flash cookie: the decoded flash is put in
// the request context and the cookie is expired on the response. The store
// itself is also put in the context for Put.
func (s *Store) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), storeKey{}, s)
			if _, err := r.Cookie(s.opts.CookieName); err == nil {
				f, _ := s.Read(r.Cookies())
				http.SetCookie(w, s.cookie("", -1))
				ctx = WithValue(ctx, f)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Put writes f to w with the store installed by Middleware.
func Put(ctx context.Context, w http.ResponseWriter, f Flash) error {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok {
		return ErrNoStore
	}
	return s.Write(w, f)
}

// WithValue stores f in ctx.
func WithValue(ctx context.Context, f Flash) context.Context {
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromCtx returns the flash delivered with this request, if any.
func FromCtx(ctx context.Context) Flash {
	f, _ := ctx.Value(ctxKey{}).(Flash)
	return f
}
