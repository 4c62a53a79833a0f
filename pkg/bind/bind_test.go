package bind_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/bind"
)

var permitted = []string{"name", "sku", "retail"}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestScopedForm(t *testing.T) {
	req := formRequest(url.Values{
		"product[name]": {"Shirt"},
		"product[sku]":  {""},
		"product[cost]": {"ignored"},
	})

	attrs, err := bind.Attributes(req, "product", permitted...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Shirt", "sku": ""}, attrs)
}

func TestFlatForm(t *testing.T) {
	req := formRequest(url.Values{"name": {"Shirt"}, "retail": {"9.99"}})

	attrs, err := bind.Attributes(req, "product", permitted...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Shirt", "retail": "9.99"}, attrs)
}

func TestNestedJSON(t *testing.T) {
	req := jsonRequest(`{"product":{"name":"Shirt","retail":19.5,"sku":null,"extra":true}}`)

	attrs, err := bind.Attributes(req, "product", permitted...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Shirt", "retail": "19.5", "sku": ""}, attrs)
}

func TestFlatJSON(t *testing.T) {
	req := jsonRequest(`{"name":"Shirt","retail":"20.00"}`)

	attrs, err := bind.Attributes(req, "product", permitted...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Shirt", "retail": "20.00"}, attrs)
}

func TestMalformedJSON(t *testing.T) {
	_, err := bind.Attributes(jsonRequest(`{"name":`), "product", permitted...)
	assert.ErrorIs(t, err, bind.ErrMalformed)

	_, err = bind.Attributes(jsonRequest(`{"name":{"first":"x"}}`), "product", permitted...)
	assert.ErrorIs(t, err, bind.ErrMalformed)
}

func TestScopeMustBeObject(t *testing.T) {
	for _, body := range []string{`{"product":"x"}`, `{"product":null}`, `{"product":["name"]}`} {
		_, err := bind.Attributes(jsonRequest(body), "product", permitted...)
		assert.ErrorIs(t, err, bind.ErrMalformed, body)
	}
}
