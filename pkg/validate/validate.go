// Package validate collects per-field validation failures into a single,
// ordered error value.
//
// Entities build their own checks explicitly:
//
//	func (p Product) Validate() error {
//	    v := validate.New()
//	    v.Required("name", p.Name)
//	    v.RequiredDecimal("retail", p.Retail)
//	    return v.Err()
//	}
//
// Callers recover the structured failures with errors.As:
//
//	var verr *validate.Error
//	if errors.As(err, &verr) {
//	    flash.Error(verr.Error()) // "Name can't be blank, Retail can't be blank"
//	}
package validate

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Standard messages.
const (
	MsgBlank     = "can't be blank"
	MsgNotNumber = "is not a number"
	MsgMustExist = "must exist"
)

// FieldError is one failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FullMessage joins the humanized field name with the message,
// e.g. "Wholesale can't be blank".
func (f FieldError) FullMessage() string {
	return Humanize(f.Field) + " " + f.Message
}

// Error is returned when one or more fields fail validation. Field order is
// the order in which the checks ran.
type Error struct {
	Fields []FieldError `json:"errors"`
}

// Error joins every full message with ", ".
func (e *Error) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// Messages returns the full message of every field error in order.
func (e *Error) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.FullMessage())
	}
	return out
}

// Has reports whether field failed at least one check.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// As extracts a *Error from err's chain.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Validator accumulates field errors.
type Validator struct {
	fields []FieldError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Add records a failure for field unless the exact pair is already recorded.
func (v *Validator) Add(field, message string) {
	for _, f := range v.fields {
		if f.Field == field && f.Message == message {
			return
		}
	}
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// Required fails when value is empty after trimming whitespace.
func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, MsgBlank)
	}
}

// RequiredDecimal fails when value is null. Zero is a present value.
func (v *Validator) RequiredDecimal(field string, value decimal.NullDecimal) {
	if !value.Valid {
		v.Add(field, MsgBlank)
	}
}

// RequiredID fails when id is zero.
func (v *Validator) RequiredID(field string, id uint) {
	if id == 0 {
		v.Add(field, MsgMustExist)
	}
}

// Merge appends every field error carried by err. Non-validation errors are
// ignored.
func (v *Validator) Merge(err error) {
	if verr, ok := As(err); ok {
		for _, f := range verr.Fields {
			v.Add(f.Field, f.Message)
		}
	}
}

// Valid reports whether no checks have failed.
func (v *Validator) Valid() bool { return len(v.fields) == 0 }

// Err returns nil when valid, otherwise a *Error holding a copy of the
// recorded failures.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &Error{Fields: append([]FieldError(nil), v.fields...)}
}

// Humanize turns a field key into a label: "product_id" -> "Product",
// "sell_through" -> "Sell through".
func Humanize(field string) string {
	s := strings.TrimSuffix(field, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
