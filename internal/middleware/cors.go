package middleware

import "net/http"

// CORS returns a middleware implementing the allow-list CORS policy.
// A request from a listed origin gets that origin echoed back; anything
// else falls back to the first configured origin. Preflight requests are
// answered with 204 and no body.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowOrigin := ""
			if origin := r.Header.Get("Origin"); allowed[origin] {
				allowOrigin = origin
			} else if len(allowedOrigins) > 0 {
				allowOrigin = allowedOrigins[0]
			}

			if allowOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			}
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
