// Package prommetrics exports clustering metrics to Prometheus.
//
//	c := prommetrics.NewCollector("textcluster")
//	clusterer, _ := textcluster.New(textcluster.WithMetricsCollector(c))
//	http.Handle("/metrics", promhttp.HandlerFor(c.Registry(), promhttp.HandlerOpts{}))
//
// Short-lived processes can write the text exposition format for the
// node_exporter textfile collector with WriteToTextfile.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements textcluster.MetricsCollector on a private registry.
type Collector struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	runDuration   prometheus.Histogram
	documents     prometheus.Counter
	attempts      *prometheus.CounterVec
	passes        prometheus.Counter
	reassignments prometheus.Counter
}

// NewCollector creates a Collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Total clustering runs by status",
	}, []string{"status"})
	c.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Clustering run latency in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	})
	c.documents = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_total",
		Help:      "Raw documents submitted to clustering runs",
	})
	c.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempts_total",
		Help:      "Clustering attempts by outcome",
	}, []string{"outcome"})
	c.passes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "passes_total",
		Help:      "Assignment/update passes",
	})
	c.reassignments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reassignments_total",
		Help:      "Documents moved to a different cluster",
	})

	c.registry.MustRegister(c.runs, c.runDuration, c.documents, c.attempts, c.passes, c.reassignments)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRun implements textcluster.MetricsCollector.
func (c *Collector) RecordRun(documents, _ int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.runs.WithLabelValues(status).Inc()
	c.runDuration.Observe(duration.Seconds())
	c.documents.Add(float64(documents))
}

// RecordAttempt implements textcluster.MetricsCollector.
func (c *Collector) RecordAttempt(_ int, degenerate bool) {
	outcome := "accepted"
	if degenerate {
		outcome = "degenerate"
	}
	c.attempts.WithLabelValues(outcome).Inc()
}

// RecordPass implements textcluster.MetricsCollector.
func (c *Collector) RecordPass(reassigned int) {
	c.passes.Inc()
	c.reassignments.Add(float64(reassigned))
}

// WriteToTextfile writes the current metrics to path in the text exposition
// format. The file is replaced atomically.
func (c *Collector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
