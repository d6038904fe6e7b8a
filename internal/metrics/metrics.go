// Package metrics holds the Prometheus collectors cmd/hltree serve exposes
// at /metrics, following the instrumentation idiom of wrapping one call
// (here, highlight.HighlightTree) with a histogram for latency and a
// counter for volume.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HighlightDuration observes the wall-clock time a caller reports for
	// highlighting one document, labeled by the source language. The
	// cmd/hltree callers start the clock before parsing (serve: at the
	// start of the request), so parsing is included.
	HighlightDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "highlight_duration_seconds",
			Help:    "Time spent parsing and highlighting one document.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"language"},
	)

	// SpansEmitted counts spans HighlightTree has handed to an EmitFunc,
	// labeled by the source language.
	SpansEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "highlight_spans_emitted_total",
			Help: "Total spans emitted by HighlightTree.",
		},
		[]string{"language"},
	)
)

// Registry is the collector registry cmd/hltree serve exposes at /metrics.
// A dedicated registry (rather than prometheus.DefaultRegisterer) keeps
// this package's collectors from leaking into any other registerer a host
// process might already have, matching the isolation a library, rather
// than a standalone binary, should provide.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(HighlightDuration, SpansEmitted)
}

// Observe records one HighlightTree call's duration and span count.
func Observe(language string, duration time.Duration, spanCount int) {
	HighlightDuration.WithLabelValues(language).Observe(duration.Seconds())
	SpansEmitted.WithLabelValues(language).Add(float64(spanCount))
}
