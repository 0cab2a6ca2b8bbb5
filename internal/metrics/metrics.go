// Package metrics exposes Prometheus instrumentation for the pipeline.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DocumentsFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "articlemetrics_documents_fetched_total",
			Help: "Total number of article pages fetched successfully.",
		},
	)
	FetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "articlemetrics_fetch_failures_total",
			Help: "Total number of article fetches that failed.",
		},
	)
	DocumentsAnalyzed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "articlemetrics_documents_analyzed_total",
			Help: "Total number of documents run through the metric calculator.",
		},
	)
	MissingDocuments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "articlemetrics_missing_documents_total",
			Help: "Total number of documents with no acquired text.",
		},
	)
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "articlemetrics_batch_duration_seconds",
			Help:    "Duration of the batch analysis phase in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(DocumentsFetched)
	prometheus.MustRegister(FetchFailures)
	prometheus.MustRegister(DocumentsAnalyzed)
	prometheus.MustRegister(MissingDocuments)
	prometheus.MustRegister(AnalysisDuration)
}

// Expose serves the /metrics endpoint on addr; intended for long batches
// where progress is watched externally.
func Expose(addr string) {
	slog.Info("Exposing Prometheus metrics", "address", addr)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Failed to start Prometheus metrics server", "error", err)
	}
}
