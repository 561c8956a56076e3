package prommetrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/textcluster"
	"github.com/hupe1980/textcluster/testutil"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ textcluster.MetricsCollector = (*Collector)(nil)

func TestCollector_Record(t *testing.T) {
	c := NewCollector("textcluster")

	c.RecordRun(11, 1, 5*time.Millisecond, nil)
	c.RecordRun(1, 0, time.Millisecond, errors.New("boom"))
	c.RecordAttempt(3, true)
	c.RecordAttempt(4, false)
	c.RecordPass(4)
	c.RecordPass(0)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.runs.WithLabelValues("ok")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.runs.WithLabelValues("error")))
	assert.Equal(t, 12.0, promtestutil.ToFloat64(c.documents))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.attempts.WithLabelValues("degenerate")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.attempts.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.passes))
	assert.Equal(t, 4.0, promtestutil.ToFloat64(c.reassignments))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.runDuration))
}

func TestCollector_WithClusterer(t *testing.T) {
	c := NewCollector("textcluster")

	clusterer, err := textcluster.New(
		textcluster.WithRandSource(testutil.NewRNG(42)),
		textcluster.WithMetricsCollector(c),
	)
	require.NoError(t, err)

	res, err := clusterer.Run(context.Background(), testutil.DemoCorpus())
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.runs.WithLabelValues("ok")))
	assert.Equal(t, 11.0, promtestutil.ToFloat64(c.documents))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.attempts.WithLabelValues("accepted")))
	assert.Equal(t, float64(res.Attempts-1), promtestutil.ToFloat64(c.attempts.WithLabelValues("degenerate")))
	assert.Equal(t, float64(res.Attempts*textcluster.DefaultIterations), promtestutil.ToFloat64(c.passes))
}

func TestCollector_WriteToTextfile(t *testing.T) {
	c := NewCollector("textcluster")
	c.RecordRun(4, 1, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "textcluster.prom")
	require.NoError(t, c.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `textcluster_runs_total{status="ok"} 1`)
	assert.Contains(t, string(data), "textcluster_documents_total 4")
}
