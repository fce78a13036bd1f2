// Package middleware holds the HTTP middleware wrapped around every route.
package middleware

import (
	"encoding/json"
	"net/http"
	"slices"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) is mw1(mw2(handler)): mw1 runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			final = mw(final)
		}
		return final
	}
}

// writeError writes the same {"error": "..."} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
