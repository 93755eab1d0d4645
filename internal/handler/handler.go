package handler

import "net/http"

// Handler carries cross-cutting HTTP concerns (CORS).
type Handler struct {
	allowedOrigins []string
}

// New creates a Handler with the configured CORS origin allowlist.
func New(allowedOrigins []string) *Handler {
	return &Handler{allowedOrigins: allowedOrigins}
}

// CORS allows requests from the configured frontend origins.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range h.allowedOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
