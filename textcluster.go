package textcluster

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/hupe1980/textcluster/internal/kmeans"
	"github.com/hupe1980/textcluster/preprocess"
)

// ClusterCount returns the number of clusters used for a corpus of n raw
// documents: floor(sqrt(floor(n/2))).
func ClusterCount(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(n / 2)))
}

// Clusterer groups short text documents by lexical similarity.
//
// A Clusterer is immutable after New and safe for concurrent use provided the
// configured RandSource is. Every Run owns its own state.
type Clusterer struct {
	opts options
}

// New creates a Clusterer.
func New(optFns ...Option) (*Clusterer, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Clusterer{opts: o}, nil
}

// Run normalizes raw, clusters the distinct normalized documents and labels
// every distinct original document with its cluster index.
func (c *Clusterer) Run(ctx context.Context, raw []string) (*Result, error) {
	return c.run(ctx, raw, c.opts.normalizer)
}

// RunNormalized clusters documents that are already normalized. Documents are
// only trimmed.
func (c *Clusterer) RunNormalized(ctx context.Context, docs []string) (*Result, error) {
	return c.run(ctx, docs, preprocess.Identity{})
}

func (c *Clusterer) run(ctx context.Context, raw []string, normalizer preprocess.Normalizer) (res *Result, err error) {
	start := time.Now()
	k := ClusterCount(len(raw))
	attempts := 0
	defer func() {
		c.opts.metricsCollector.RecordRun(len(raw), attempts, time.Since(start), err)
		c.opts.logger.LogRun(ctx, len(raw), k, attempts, err)
	}()

	if len(raw) == 0 {
		return nil, ErrEmptyCorpus
	}
	if k < 1 {
		return nil, &ErrTooFewDocuments{Documents: len(raw)}
	}

	pairs := normalizer.Normalize(raw)
	normalized := make([]string, len(pairs))
	for i, p := range pairs {
		normalized[i] = p.Normalized
	}

	obs := &observer{ctx: ctx, k: k, logger: c.opts.logger.WithK(k), metrics: c.opts.metricsCollector}
	model, err := kmeans.Train(ctx, normalized, kmeans.Config{
		K:           k,
		Iterations:  c.opts.iterations,
		Metric:      c.opts.metric,
		Direction:   c.opts.direction(),
		MaxAttempts: c.opts.maxAttempts,
		Rand:        c.opts.rand,
		Observer:    obs,
	})
	attempts = obs.attempts
	if err != nil {
		return nil, translateError(err)
	}

	return newResult(pairs, model), nil
}

func newResult(pairs []preprocess.Pair, model *kmeans.Model) *Result {
	res := &Result{
		K:           model.K,
		Attempts:    model.Attempts,
		Passes:      model.Passes,
		Converged:   model.Converged,
		Documents:   make([]string, len(pairs)),
		Labels:      make(map[string]string, len(pairs)),
		Assignments: make(map[string]int, model.Corpus.Len()),
	}

	for i, doc := range model.Corpus.Documents {
		res.Assignments[doc] = model.Assignment[i]
	}
	for i, p := range pairs {
		cluster, _ := model.Cluster(p.Normalized)
		res.Documents[i] = p.Original
		res.Labels[p.Original] = strconv.Itoa(cluster)
	}
	res.buildMembers()
	return res
}

// observer forwards engine progress to logging and metrics.
type observer struct {
	ctx      context.Context
	k        int
	logger   *Logger
	metrics  MetricsCollector
	attempts int
}

func (o *observer) OnPass(attempt, pass, reassigned int) {
	o.metrics.RecordPass(reassigned)
	o.logger.WithAttempt(attempt).LogPass(o.ctx, pass, reassigned)
}

func (o *observer) OnAttempt(attempt, passes, nonEmpty int, converged bool) {
	o.attempts = attempt
	o.metrics.RecordAttempt(passes, nonEmpty < o.k)
	o.logger.WithAttempt(attempt).LogAttempt(o.ctx, passes, nonEmpty, o.k, converged)
}
