package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/stockroom/config"
)

// MethodOverrideHeader lets non-browser clients tunnel a verb through POST.
const MethodOverrideHeader = "X-HTTP-Method-Override"

var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites a POST carrying a _method form field (or the
// override header) to PUT, PATCH or DELETE, so HTML forms can reach the
// update and destroy routes. Other values are ignored.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := r.Header.Get(MethodOverrideHeader)
			if m == "" && isForm(r) {
				r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes())
				m = r.PostFormValue("_method")
			}
			if m = strings.ToUpper(strings.TrimSpace(m)); overridable[m] {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
