// Package metrics exposes Prometheus collectors for the rendering service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paperpop_renders_total",
			Help: "Total number of completed renders",
		},
		[]string{"template", "kind"},
	)

	RenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paperpop_render_failures_total",
			Help: "Total number of failed renders",
		},
		[]string{"template", "kind", "error_code"},
	)

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paperpop_render_duration_seconds",
			Help:    "Duration of render requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"template", "kind"},
	)
)
