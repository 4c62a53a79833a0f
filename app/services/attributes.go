package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

// Attributes holds the permitted fields supplied by a request. A key that is
// present was supplied, even when its value is blank; absent keys are left
// untouched on update.
type Attributes map[string]string

// Permitted field lists, in form order.
var (
	ProductFields = []string{"name", "description", "category", "sku", "wholesale", "retail"}
	ItemFields    = []string{"size", "color", "status"}
)

// Lookup returns the trimmed value of key and whether it was supplied.
func (a Attributes) Lookup(key string) (string, bool) {
	v, ok := a[key]
	return strings.TrimSpace(v), ok
}

// assignString copies key into dst when supplied.
func (a Attributes) assignString(key string, dst *string) {
	if v, ok := a.Lookup(key); ok {
		*dst = v
	}
}

// assignMoney parses key into dst when supplied. A blank value clears dst.
// It reports false when the value is not a number; dst is cleared then too.
func (a Attributes) assignMoney(key string, dst *decimal.NullDecimal) bool {
	v, ok := a.Lookup(key)
	if !ok {
		return true
	}
	if v == "" {
		*dst = decimal.NullDecimal{}
		return true
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		*dst = decimal.NullDecimal{}
		return false
	}
	*dst = decimal.NewNullDecimal(d)
	return true
}

// withNumberErrors rewrites "can't be blank" into "is not a number" for
// fields whose input failed to parse, keeping the entity's field order.
func withNumberErrors(err error, notNumbers map[string]bool) error {
	verr, ok := validate.As(err)
	if !ok || len(notNumbers) == 0 {
		return err
	}
	v := validate.New()
	for _, f := range verr.Fields {
		if notNumbers[f.Field] && f.Message == validate.MsgBlank {
			f.Message = validate.MsgNotNumber
		}
		v.Add(f.Field, f.Message)
	}
	return v.Err()
}
