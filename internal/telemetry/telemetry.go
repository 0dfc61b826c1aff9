// Package telemetry is the ambient logging/metrics layer shared by every
// facade constructor, split between a no-op sink and a Prometheus-backed
// sink: metrics are entirely optional, and the construction hot path never
// pays for them unless a registry was supplied.
//
// © 2025 frozen authors.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Variant names a concrete container shape a facade picked, for use in
// logs and metric labels.
type Variant string

const (
	VariantDenseScalar    Variant = "dense_scalar"
	VariantSparseScalar   Variant = "sparse_scalar"
	VariantHashCollision  Variant = "hash_collision"
	VariantHashNoCollide  Variant = "hash_no_collision"
	VariantBinarySearch   Variant = "binary_search"
	VariantEytzinger      Variant = "eytzinger"
	VariantScan           Variant = "scan"
	VariantOrderedScan    Variant = "ordered_scan"
)

// Sink receives a single event per facade construction: which variant was
// chosen, and for how many entries. The two hash sub-variants are distinct
// Variant values (hash_collision, hash_no_collision), so no second label
// dimension is needed to tell them apart.
type Sink interface {
	ObserveConstruction(variant Variant, entries int)
}

type noopSink struct{}

func (noopSink) ObserveConstruction(Variant, int) {}

// NoopSink is the default sink used when no metrics registry is supplied.
var NoopSink Sink = noopSink{}

// promSink implements Sink on top of a prometheus.CounterVec and a
// prometheus.HistogramVec, both labeled by variant.
type promSink struct {
	constructions *prometheus.CounterVec
	entryCounts   *prometheus.HistogramVec
}

var (
	promSinksMu sync.Mutex
	promSinks   = map[*prometheus.Registry]Sink{}
)

// NewPromSink builds a Sink backed by reg, memoized per registry: calling
// NewPromSink twice with the same registry (as every WithMetrics(reg)
// construction does) returns the same Sink instead of re-registering the
// same collectors, which would otherwise panic with
// prometheus.AlreadyRegisteredError. Callers that already hold a Sink they
// want to reuse across many constructions can sidestep this cache entirely
// by threading it through WithMetricsSink instead of WithMetrics.
func NewPromSink(reg *prometheus.Registry) Sink {
	if reg == nil {
		return NoopSink
	}

	promSinksMu.Lock()
	defer promSinksMu.Unlock()

	if s, ok := promSinks[reg]; ok {
		return s
	}

	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "frozen",
			Name:      "constructions_total",
			Help:      "Number of frozen map/set constructions, labeled by the chosen container variant.",
		},
		[]string{"variant"},
	)
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			vec = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			panic(err)
		}
	}

	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "frozen",
			Name:      "construction_entries",
			Help:      "Number of entries in a frozen map/set at construction, labeled by the chosen container variant.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"variant"},
	)
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			hist = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			panic(err)
		}
	}

	s := &promSink{constructions: vec, entryCounts: hist}
	promSinks[reg] = s
	return s
}

func (s *promSink) ObserveConstruction(variant Variant, entries int) {
	s.constructions.WithLabelValues(string(variant)).Inc()
	s.entryCounts.WithLabelValues(string(variant)).Observe(float64(entries))
}

// Logger wraps the *zap.Logger every facade constructor logs through.
// Construction logs once at Debug level with the chosen variant; the
// lookup hot path never logs.
type Logger struct {
	z *zap.Logger
}

// NewLogger wraps z, defaulting to a no-op logger when z is nil.
func NewLogger(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return Logger{z: z}
}

func (l Logger) ConstructionChose(variant Variant, n int) {
	l.z.Debug("frozen: chose container variant",
		zap.String("variant", string(variant)),
		zap.Int("entries", n),
	)
}

func (l Logger) EmitWrote(symbol string, variant Variant) {
	l.z.Info("frozen/emit: wrote generated container",
		zap.String("symbol", symbol),
		zap.String("variant", string(variant)),
	)
}
