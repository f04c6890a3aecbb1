package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResourceOf(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/api/v1/orders/{id}/status", "orders"},
		{"/api/v1/products", "products"},
		{"/api/v1/", unmatchedRoute},
		{"/healthz", unmatchedRoute},
		{unmatchedRoute, unmatchedRoute},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceOf(tt.route))
		})
	}
}

func TestMetrics(t *testing.T) {
	api := chi.NewRouter()
	api.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1"}`))
	})
	api.Post("/orders/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	r.Mount(apiPrefix, api)

	before := testutil.ToFloat64(apiRequests.WithLabelValues("orders", http.MethodGet, "/api/v1/orders/{id}", "2xx"))
	conflicts := testutil.ToFloat64(apiRequests.WithLabelValues("orders", http.MethodPost, "/api/v1/orders/{id}/cancel", "4xx"))
	series := testutil.CollectAndCount(apiRequests)

	for _, target := range []string{"/api/v1/orders/a", "/api/v1/orders/b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/orders/a/cancel", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// ids are collapsed into the route pattern
	assert.Equal(t, before+2, testutil.ToFloat64(apiRequests.WithLabelValues("orders", http.MethodGet, "/api/v1/orders/{id}", "2xx")))
	assert.Equal(t, conflicts+1, testutil.ToFloat64(apiRequests.WithLabelValues("orders", http.MethodPost, "/api/v1/orders/{id}/cancel", "4xx")))
	// /healthz is not an api route and adds no series
	assert.Equal(t, series, testutil.CollectAndCount(apiRequests))
	assert.Zero(t, testutil.ToFloat64(apiInFlight))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusNoContent))
	assert.Equal(t, "4xx", statusClass(http.StatusConflict))
	assert.Equal(t, "5xx", statusClass(http.StatusServiceUnavailable))
}
