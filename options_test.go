package frozen_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/Voskan/frozen"
)

func TestWithMetrics_SameRegistryAcrossConstructionsDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NotPanics(t, func() {
		_, err := frozen.NewStringMap([]frozen.Entry[string, int]{
			{Key: "one", Value: 1},
			{Key: "two", Value: 2},
		}, frozen.WithMetrics[string](reg))
		require.NoError(t, err)

		_, err = frozen.NewStringMap([]frozen.Entry[string, int]{
			{Key: "ten", Value: 10},
			{Key: "eleven", Value: 11},
		}, frozen.WithMetrics[string](reg))
		require.NoError(t, err)
	})
}
