package api

import (
	"net/http"

	"github.com/go-chi/render"
)

// RequireToken guards mutating endpoints with a static shared-secret bearer
// token. The Authorization header must equal "Bearer <token>" exactly;
// anything else is rejected before the handler runs.
func RequireToken(token string) func(http.Handler) http.Handler {
	expected := "Bearer " + token
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != expected {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, ErrorResponse{Error: "unauthorized", Message: "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimit caps the size of request bodies.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
