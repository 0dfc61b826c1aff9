package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromSink_SameRegistryTwiceDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NotPanics(t, func() {
		first := NewPromSink(reg)
		first.ObserveConstruction(VariantDenseScalar, 5)

		second := NewPromSink(reg)
		second.ObserveConstruction(VariantSparseScalar, 7)
	})
}

func TestNewPromSink_NilRegistryReturnsNoop(t *testing.T) {
	sink := NewPromSink(nil)
	assert.Equal(t, NoopSink, sink)
	assert.NotPanics(t, func() { sink.ObserveConstruction(VariantScan, 1) })
}

func TestNewPromSink_DistinctRegistriesGetDistinctSinks(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()

	a := NewPromSink(regA)
	b := NewPromSink(regB)
	assert.NotSame(t, a, b)
}
