package textcluster

import (
	"log/slog"

	"github.com/hupe1980/textcluster/distance"
	"github.com/hupe1980/textcluster/internal/kmeans"
	"github.com/hupe1980/textcluster/preprocess"
)

// DefaultIterations is the pass budget used when WithIterations is not set.
const DefaultIterations = 10

type options struct {
	iterations       int
	metric           distance.Metric
	legacyPolarity   bool
	maxAttempts      int
	rand             RandSource
	normalizer       preprocess.Normalizer
	metricsCollector MetricsCollector
	logger           *Logger
}

// RandSource draws the documents used as initial centroids.
type RandSource = kmeans.RandSource

// Option configures a Clusterer.
type Option func(*options)

// WithIterations sets the number of assignment/update passes per attempt.
//
// A positive budget always runs exactly that many passes. Zero runs until a
// pass reassigns no document.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithMetric selects the similarity metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLegacyEuclideanPolarity makes Euclidean assignment pick the centroid
// with the largest distance, reproducing the behaviour of earlier releases
// that compared every metric with ">". Cosine is unaffected. Combined with
// Euclidean it needs a positive WithIterations budget.
func WithLegacyEuclideanPolarity() Option {
	return func(o *options) {
		o.legacyPolarity = true
	}
}

// WithMaxAttempts bounds how often clustering restarts after producing fewer
// than K non-empty clusters.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithRandSource sets the random source used for centroid seeding.
// The source must be safe for concurrent use if the Clusterer is shared.
//
// Example with a reproducible seed:
//
//	c, _ := textcluster.New(textcluster.WithRandSource(textcluster.NewRandSource(42)))
func WithRandSource(r RandSource) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithNormalizer replaces the default preprocessing.
// Pass nil to restore the default.
func WithNormalizer(n preprocess.Normalizer) Option {
	return func(o *options) {
		o.normalizer = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &textcluster.BasicMetricsCollector{}
//	c, _ := textcluster.New(textcluster.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := textcluster.NewJSONLogger(slog.LevelInfo)
//	c, _ := textcluster.New(textcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		iterations:       DefaultIterations,
		metric:           distance.MetricCosine,
		maxAttempts:      kmeans.DefaultMaxAttempts,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.normalizer == nil {
		o.normalizer = preprocess.New()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

func (o options) validate() error {
	if !o.metric.Valid() {
		return ErrInvalidMetric
	}
	if o.iterations < 0 {
		return ErrInvalidIterations
	}
	if o.maxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}
	if o.direction() != o.metric.Direction() && o.iterations == 0 {
		return ErrUnboundedLegacyPolarity
	}
	return nil
}

func (o options) direction() distance.Direction {
	if o.legacyPolarity {
		return distance.Maximize
	}
	return o.metric.Direction()
}
