package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders",
		},
	)

	statusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Total number of order status transitions",
		},
		[]string{"from", "to"},
	)

	cacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "orders",
			Name:      "cache_requests_total",
			Help:      "Order reads served by the cache, by result",
		},
		[]string{"result"},
	)
)
