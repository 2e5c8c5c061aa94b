package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/geochart/errors"
)

func TestNewRegistryRegistersCoreMetrics(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.CoreMetrics())
	require.NotNil(t, r.PrometheusRegistry())

	r.Metrics.RecordResolvePass("geo0", "world", 42)
	r.Metrics.RecordResolveFailure("geo0", "world")
	r.Metrics.RecordIndexRebuild("geo0", 5*time.Millisecond)
	r.Metrics.RecordRegionLookup("geo0", LookupHit)
	r.Metrics.RecordRegionLookup("geo0", LookupMiss)
	r.Metrics.RecordSelectionChange("geo0", "select")

	assert.Equal(t, 1.0, testutil.ToFloat64(
		r.Metrics.ResolvePasses.WithLabelValues("geo0", "world")))
	assert.Equal(t, 42.0, testutil.ToFloat64(
		r.Metrics.ResolvedRegions.WithLabelValues("geo0", "world")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		r.Metrics.RegionLookups.WithLabelValues("geo0", LookupHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		r.Metrics.RegionLookups.WithLabelValues("geo0", LookupMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		r.Metrics.SelectionChanges.WithLabelValues("geo0", "select")))
}

func TestRegisterCollector(t *testing.T) {
	r := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "host_render_frames_total",
		Help: "test counter",
	})

	require.NoError(t, r.RegisterCollector("renderer", "frames", counter))

	// Same key twice is rejected.
	err := r.RegisterCollector("renderer", "frames", counter)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	assert.True(t, r.Unregister("renderer", "frames"))
	assert.False(t, r.Unregister("renderer", "frames"))
}

func TestRegisterCollectorPrometheusConflict(t *testing.T) {
	r := NewRegistry()

	first := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "h"})
	second := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "h"})

	require.NoError(t, r.RegisterCollector("a", "one", first))
	err := r.RegisterCollector("a", "two", second)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err), "prometheus duplicate should classify as invalid")
}
