package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agusnoopy3000/huertohogar-api/internal/auth"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Principal{Email: "cliente@demo.com", Role: entities.RoleUser}
	admin    = entities.Principal{Email: "admin@huertohogar.cl", Role: entities.RoleAdmin}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRouter mounts routes behind a stub that plays the role of Authenticate.
func newRouter(caller *entities.Principal, init func(r chi.Router)) chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if caller != nil {
				req = req.WithContext(auth.WithPrincipal(req.Context(), *caller))
			}
			next.ServeHTTP(w, req)
		})
	})
	init(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}
