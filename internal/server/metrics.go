package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests  *prometheus.CounterVec
	instances prometheus.Counter
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reftag_tag_requests_total",
			Help: "Tagging requests by outcome.",
		}, []string{"status"}),
		instances: f.NewCounter(prometheus.CounterOpts{
			Name: "reftag_tag_instances_total",
			Help: "Sentence instances produced by the tagging endpoint.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "reftag_tag_duration_seconds",
			Help:    "Tagging request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
