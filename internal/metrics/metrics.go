package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog request metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests sent to the show catalog.",
		},
		[]string{"endpoint", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Latency of show catalog requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Widget event metrics
var (
	WidgetEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_events_total",
			Help: "Total number of dispatched widget events.",
		},
		[]string{"event", "outcome"},
	)

	DisplayedShows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "widget_displayed_shows",
			Help: "Number of shows currently rendered in the show list.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		WidgetEventsTotal,
		DisplayedShows,
	)
}
