package middleware

import (
	"net/http"

	"github.com/agusnoopy3000/huertohogar-api/internal/auth"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
)

type TokenVerifier interface {
	Verify(token string) (entities.Principal, error)
}

// Authenticate requires a valid bearer token and stores the caller in the request context.
func Authenticate(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.FromHeader(r.Header.Get("Authorization"))
			if err != nil {
				utils.WriteError(w, string(entities.KindUnauthorized), "missing bearer token", http.StatusUnauthorized)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				utils.WriteError(w, string(entities.KindUnauthorized), "invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			utils.WriteError(w, string(entities.KindUnauthorized), "authentication required", http.StatusUnauthorized)
			return
		}
		if !principal.IsAdmin() {
			utils.WriteError(w, string(entities.KindForbidden), "administrator role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
