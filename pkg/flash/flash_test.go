package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/crypt"
	"github.com/shashiranjanraj/stockroom/pkg/flash"
)

func newStore() *flash.Store {
	return flash.New(crypt.New("test-key"), flash.Options{CookieName: "flash"})
}

func TestWriteThenRead(t *testing.T) {
	store := newStore()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Write(rec, flash.Notice("Successfully added product")))

	f, ok := store.Read(rec.Result().Cookies())
	require.True(t, ok)
	assert.Equal(t, "Successfully added product", f.Notice)
	assert.Empty(t, f.Error)
}

func TestLastWriteWins(t *testing.T) {
	store := newStore()
	rec := httptest.NewRecorder()
	http.SetCookie(rec, &http.Cookie{Name: "other", Value: "keep"})
	require.NoError(t, store.Write(rec, flash.Notice("first")))
	require.NoError(t, store.Write(rec, flash.Error("second")))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	f, ok := store.Read(cookies)
	require.True(t, ok)
	assert.Equal(t, flash.Error("second"), f)
}

func TestTamperedCookieIsIgnored(t *testing.T) {
	store := newStore()
	_, ok := store.Read([]*http.Cookie{{Name: "flash", Value: "garbage"}})
	assert.False(t, ok)
}

func TestMiddlewareConsumesFlash(t *testing.T) {
	store := newStore()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Write(rec, flash.Error("Name can't be blank")))

	var seen flash.Flash
	h := store.Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = flash.FromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/products/new", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	next := httptest.NewRecorder()
	h.ServeHTTP(next, req)

	assert.Equal(t, "Name can't be blank", seen.Error)

	cleared := next.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "flash", cleared[0].Name)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestMiddlewareWithoutCookie(t *testing.T) {
	store := newStore()
	var seen flash.Flash
	h := store.Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = flash.FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, seen.Empty())
	assert.Empty(t, rec.Result().Cookies())
}

func TestPutUsesStoreFromMiddleware(t *testing.T) {
	store := newStore()
	h := store.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, flash.Put(r.Context(), w, flash.Notice("saved")))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	f, ok := store.Read(rec.Result().Cookies())
	require.True(t, ok)
	assert.Equal(t, "saved", f.Notice)
}

func TestPutWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	err := flash.Put(req.Context(), httptest.NewRecorder(), flash.Notice("x"))
	assert.ErrorIs(t, err, flash.ErrNoStore)
}
