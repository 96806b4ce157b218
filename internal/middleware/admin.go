package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminGuard protects an endpoint with an HTTP Basic password checked
// against a bcrypt hash. With no hash configured the guard is a pass-through
// and the endpoint stays open, matching the original deployment.
func AdminGuard(passHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if passHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, pass, ok := r.BasicAuth()
			if !ok || bcrypt.CompareHashAndPassword([]byte(passHash), []byte(pass)) != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="responses"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
