package jwtclaims

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Run("IncCounter", func(t *testing.T) {
		metrics := NewPrometheusMetrics(prometheus.NewRegistry())
		tags := map[string]string{"result": "rejected", "code": "token_expired"}

		metrics.IncCounter("test_counter", tags)
		metrics.IncCounter("test_counter", tags)

		counter, ok := metrics.counters["test_counter"]
		require.True(t, ok, "Counter should be registered")
		assert.Equal(t, float64(2), testutil.ToFloat64(counter.With(tags)))
	})

	t.Run("ObserveHistogram", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewPrometheusMetrics(reg)

		metrics.ObserveHistogram("test_histogram", 0.5, map[string]string{"result": "accepted"})

		count, err := testutil.GatherAndCount(reg, "test_histogram")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("drops samples with different tag keys", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewPrometheusMetrics(reg)
		tags := map[string]string{"result": "accepted"}

		metrics.IncCounter("keyed_counter", tags)
		assert.NotPanics(t, func() {
			metrics.IncCounter("keyed_counter", map[string]string{"code": "token_expired"})
			metrics.ObserveHistogram("keyed_histogram", 0.1, tags)
			metrics.ObserveHistogram("keyed_histogram", 0.1, map[string]string{"result": "accepted", "code": ""})
		})

		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.counters["keyed_counter"].With(tags)))
		count, err := testutil.GatherAndCount(reg, "keyed_histogram")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("reuses collectors already registered", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		tags := map[string]string{"result": "accepted"}

		NewPrometheusMetrics(reg).IncCounter("shared_counter", tags)
		second := NewPrometheusMetrics(reg)
		second.IncCounter("shared_counter", tags)

		assert.Equal(t, float64(2), testutil.ToFloat64(second.counters["shared_counter"].With(tags)))
	})

	t.Run("records core checks", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		c := testCore(t, []core.Option{core.WithMetrics(NewPrometheusMetrics(reg))})

		require.NoError(t, c.CheckClaims(context.Background(), claimsWithAudience()))
		require.Error(t, c.CheckClaims(context.Background(), &validator.TokenClaims{}))

		count, err := testutil.GatherAndCount(reg, core.MetricValidationsTotal)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, keys(map[string]string{"c": "", "a": "", "b": ""}))
	assert.Empty(t, keys(nil))
}
