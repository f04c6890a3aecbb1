package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/auth"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour, "huertohogar-api")

	userToken, err := tokens.Issue(entities.Principal{Email: "ana@duoc.cl", Role: entities.RoleUser})
	require.NoError(t, err)
	adminToken, err := tokens.Issue(entities.Principal{Email: "admin@duoc.cl", Role: entities.RoleAdmin})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Authenticate(tokens))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		p, _ := auth.PrincipalFrom(r.Context())
		w.Write([]byte(p.Email))
	})
	r.With(middleware.RequireAdmin).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	testCases := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "/me", "", http.StatusUnauthorized, `"code":"unauthorized"`},
		{"garbage token", "/me", "Bearer nope", http.StatusUnauthorized, `"invalid or expired token"`},
		{"user", "/me", "Bearer " + userToken, http.StatusOK, "ana@duoc.cl"},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden, `"code":"forbidden"`},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusNoContent, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}
