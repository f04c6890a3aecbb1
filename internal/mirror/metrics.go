package mirror

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "mirror",
			Name:      "events_published_total",
			Help:      "Total number of events delivered to the mirror",
		},
		[]string{"event"},
	)

	eventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "mirror",
			Name:      "events_failed_total",
			Help:      "Total number of events the mirror rejected",
		},
		[]string{"event"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huertohogar",
			Subsystem: "mirror",
			Name:      "events_dropped_total",
			Help:      "Total number of events dropped because the queue was full or closed",
		},
		[]string{"event"},
	)

	queueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "huertohogar",
			Subsystem: "mirror",
			Name:      "queue_length",
			Help:      "Number of events waiting to be published",
		},
	)
)
