package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	apiPrefix      = "/api/v1"
	unmatchedRoute = "unmatched"
)

var (
	apiInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "huertohogar",
		Subsystem: "api",
		Name:      "in_flight_requests",
		Help:      "API requests currently being served.",
	})

	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "huertohogar",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API requests by resource, route pattern and status class.",
	}, []string{"resource", "method", "route", "status"})

	apiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "huertohogar",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API latency by resource and route pattern.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"resource", "method", "route"})

	apiResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "huertohogar",
		Subsystem: "api",
		Name:      "response_size_bytes",
		Help:      "Size of API response bodies.",
		Buckets:   prometheus.ExponentialBuckets(128, 4, 8),
	}, []string{"resource"})
)

// Metrics instruments requests under /api/v1. Health checks, scrapes and
// swagger assets are passed through untouched.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, apiPrefix+"/") {
			next.ServeHTTP(w, r)
			return
		}

		apiInFlight.Inc()
		defer apiInFlight.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		resource := resourceOf(route)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		apiRequests.WithLabelValues(resource, r.Method, route, statusClass(status)).Inc()
		apiDuration.WithLabelValues(resource, r.Method, route).Observe(time.Since(start).Seconds())
		apiResponseSize.WithLabelValues(resource).Observe(float64(ww.BytesWritten()))
	})
}

// resourceOf returns the first segment after the api prefix: orders, products, users...
func resourceOf(route string) string {
	rest, ok := strings.CutPrefix(route, apiPrefix+"/")
	if !ok || rest == "" {
		return unmatchedRoute
	}
	resource, _, _ := strings.Cut(rest, "/")
	return resource
}

// statusClass keeps label cardinality low: 200 -> "2xx".
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
