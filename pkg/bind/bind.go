// Package bind extracts permitted attributes from an HTTP request body.
//
// Both HTML form posts and JSON bodies are accepted. Fields may be nested
// under a scope (product[name]=..., {"product":{"name":...}}) or sent flat.
// Only permitted keys are returned; a returned key means the client sent it.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/stockroom/config"
)

// ErrMalformed wraps every body decoding failure.
var ErrMalformed = errors.New("malformed request body")

// Attributes reads the permitted fields of scope from r.
func Attributes(r *http.Request, scope string, permitted ...string) (map[string]string, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return fromJSON(r, scope, permitted)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(config.MaxBodyBytes()); err != nil {
			return nil, wrap(err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, wrap(err)
		}
	}
	return fromForm(r, scope, permitted), nil
}

func fromForm(r *http.Request, scope string, permitted []string) map[string]string {
	out := make(map[string]string, len(permitted))
	for _, field := range permitted {
		if vals, ok := r.PostForm[scope+"["+field+"]"]; ok && len(vals) > 0 {
			out[field] = vals[0]
			continue
		}
		if vals, ok := r.PostForm[field]; ok && len(vals) > 0 {
			out[field] = vals[0]
		}
	}
	return out
}

func fromJSON(r *http.Request, scope string, permitted []string) (map[string]string, error) {
	out := make(map[string]string, len(permitted))
	if r.Body == nil || r.Body == http.NoBody {
		return out, nil
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, wrap(err)
	}

	fields := body
	if raw, ok := body[scope]; ok {
		nested, isObject := raw.(map[string]any)
		if !isObject {
			return nil, fmt.Errorf("%w: %q must be an object", ErrMalformed, scope)
		}
		fields = nested
	}

	for _, field := range permitted {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		s, err := scalar(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformed, field, err)
		}
		out[field] = s
	}
	return out, nil
}

// scalar renders a decoded JSON value as form text. null is a supplied blank.
func scalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}

func wrap(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: body too large (max %d bytes)", ErrMalformed, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
