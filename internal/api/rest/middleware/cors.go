package middleware

import "net/http"

// CORS stamps the fixed cross-origin headers on every response and
// answers preflight requests before routing or storage is touched.
// The allow-origin is the one known frontend origin, not a wildcard.
type CORS struct {
	allowedOrigin string
}

// NewCORS creates a CORS middleware for the given frontend origin.
func NewCORS(allowedOrigin string) *CORS {
	return &CORS{allowedOrigin: allowedOrigin}
}

// Handle wraps next with CORS headers and preflight short-circuiting.
func (c *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", c.allowedOrigin)
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
