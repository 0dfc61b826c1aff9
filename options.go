package frozen

// options.go defines the functional-options surface shared by every facade
// constructor, generic over K so callbacks retain full type safety with
// respect to the key type chosen by the caller.
//
// © 2025 frozen authors.

import (
	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Voskan/frozen/internal/frozenhash"
	"github.com/Voskan/frozen/internal/telemetry"
)

// config bundles every knob a facade constructor accepts. It is never
// exposed directly; callers only interact with it through Option.
type config[K comparable] struct {
	logger   *zap.Logger
	registry *prometheus.Registry
	sinkOpt  telemetry.Sink
	seed     *frozenhash.Seed
}

func defaultConfig[K comparable]() *config[K] {
	return &config[K]{}
}

func (c *config[K]) logger_() telemetry.Logger { return telemetry.NewLogger(c.logger) }

func (c *config[K]) sink() telemetry.Sink {
	if c.sinkOpt != nil {
		return c.sinkOpt
	}
	return telemetry.NewPromSink(c.registry)
}

func (c *config[K]) hashSeed() frozenhash.Seed {
	if c.seed != nil {
		return *c.seed
	}
	return frozenhash.NewSeed()
}

// Option configures a facade constructor. The same Option type is reused
// across NewMap, NewScalarMap, NewStringMap, NewOrderedMap, and their set
// counterparts.
type Option[K comparable] func(*config[K])

// WithLogger plugs an external *zap.Logger. Construction logs once, at
// Debug level, which container variant was chosen; lookups never log.
func WithLogger[K comparable](l *zap.Logger) Option[K] {
	return func(c *config[K]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus counters (labeled by chosen variant) for
// this construction. Passing nil disables metrics, which is also the
// default. Safe to call with the same registry across many constructions:
// internal/telemetry.NewPromSink memoizes its collectors per registry, so
// repeated calls never hit Prometheus's register-twice panic.
func WithMetrics[K comparable](reg *prometheus.Registry) Option[K] {
	return func(c *config[K]) {
		c.registry = reg
	}
}

// WithMetricsSink plugs a caller-built telemetry.Sink directly, bypassing
// WithMetrics/NewPromSink entirely. Meant for a fleet that already built
// and registered one Sink up front and wants every frozen construction to
// share it rather than resolve one from a registry on every call.
func WithMetricsSink[K comparable](sink telemetry.Sink) Option[K] {
	return func(c *config[K]) {
		c.sinkOpt = sink
	}
}

// WithSeed pins the hash seed used by hash-table-backed variants instead of
// drawing one from process randomness. Meant for tests that assert on a
// specific bucket layout; runtime callers otherwise have no reason to pin
// this, since doing so makes the container's bucket layout predictable to
// an adversary supplying keys.
func WithSeed[K comparable](seed uint64) Option[K] {
	return func(c *config[K]) {
		s := frozenhash.Seed(seed)
		c.seed = &s
	}
}

func applyOptions[K comparable](opts []Option[K]) *config[K] {
	c := defaultConfig[K]()
	for _, opt := range opts {
		opt(c)
	}
	return c
}
