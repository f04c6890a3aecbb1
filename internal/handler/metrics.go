package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Total number of register and login attempts",
		},
		[]string{"operation", "result"},
	)

	documentUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "documents",
			Name:      "uploads_total",
			Help:      "Total number of document uploads",
		},
		[]string{"result"},
	)

	documentUploadSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "huertohogar",
			Subsystem: "documents",
			Name:      "upload_size_bytes",
			Help:      "Histogram of accepted document sizes in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		authAttempts,
		documentUploads,
		documentUploadSize,
	)
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
