package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/heartmarshall/notes-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// A "*" entry allows any origin; with credentials enabled the request
// origin is echoed instead, as browsers reject "*" there. Preflight
// requests are answered with 204 and never reach the handler.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	wildcard := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()

			if origin != "" {
				switch {
				case wildcard && !cfg.AllowCredentials:
					h.Set("Access-Control-Allow-Origin", "*")
				case wildcard || slices.Contains(origins, origin):
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
