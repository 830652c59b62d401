package membership_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/membership"
	"github.com/katalvlaran/centraliser/transformation"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := membership.NewMetrics(reg)
	require.NoError(t, err)

	swap := []transformation.Transformation{transformation.MustNew(1, 0)}
	for i := 0; i < 2; i++ {
		_, err = membership.Decide(transformation.MustNew(0, 0), swap, membership.WithMetrics(m))
		require.NoError(t, err)
	}
	_, err = membership.Decide(swap[0], swap, membership.WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Decisions.WithLabelValues("not-centralising", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Decisions.WithLabelValues("quotient-witness", "true")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Decisions))

	// usage errors are not counted
	_, err = membership.Decide(transformation.MustNew(0, 0), nil, membership.WithMetrics(m))
	require.Error(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(m.Decisions))

	_, err = membership.NewMetrics(reg)
	assert.Error(t, err, "collectors are registered once per registry")
}
