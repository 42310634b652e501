package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/francofil/proyecto-final-algoritmos/core/metrics"
)

func TestPromSink_RecordSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordSolve(coremetrics.SolveEvent{
		Expansions: 12,
		Truncated:  false,
		Duration:   80 * time.Millisecond,
		Time:       time.Now(),
	}))
	require.NoError(t, sink.RecordSolve(coremetrics.SolveEvent{
		Expansions: 5,
		Truncated:  true,
		Duration:   time.Second,
		Time:       time.Now(),
	}))

	ps := sink.(*PromSink)
	assert.InDelta(t, 1, testutil.ToFloat64(ps.solves.WithLabelValues("false")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(ps.solves.WithLabelValues("true")), 1e-9)
	assert.Equal(t, 1, testutil.CollectAndCount(ps.duration, "planner_solve_duration_seconds"))
	assert.Equal(t, 1, testutil.CollectAndCount(ps.expansions, "planner_solve_expansions"))
}

func TestPromSink_RecordRejection(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	rec, ok := sink.(coremetrics.RejectionRecorder)
	require.True(t, ok)
	require.NoError(t, rec.RecordRejection(coremetrics.RejectionEvent{Field: "time_budget", Time: time.Now()}))
	require.NoError(t, rec.RecordRejection(coremetrics.RejectionEvent{Field: "time_budget", Time: time.Now()}))

	ps := sink.(*PromSink)
	assert.InDelta(t, 2, testutil.ToFloat64(ps.rejections.WithLabelValues("time_budget")), 1e-9)
}

func TestPromSink_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	// Re-registering on the same registry must reuse the existing collectors.
	_, err = NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
}
