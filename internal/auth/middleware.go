package auth

import (
	"net/http"
	"strings"
)

// Authenticate parses a bearer token when one is present and stores the
// claims in the request context. It never rejects: the action handlers decide
// per operation whether claims are required, since sign_up and sign_in share
// an endpoint with admin-only actions.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if claims, err := Verify(strings.TrimPrefix(h, "Bearer ")); err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}
