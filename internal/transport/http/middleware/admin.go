package middleware

import (
	"net/http"
)

// RequireAdmin composes after Auth and allows access only to identities whose
// token carries the admin flag. No mutation reaches the handler on rejection.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !claims.IsAdmin {
			writeJSONError(w, http.StatusForbidden, "not authorized as an admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
