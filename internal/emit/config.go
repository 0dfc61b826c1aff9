// Package emit is the code-generation half of the dispatch layer: given a
// manifest of entries and a configuration, it runs the same analyzers the
// runtime facades run (internal/analyze.Scalar, internal/analyze.Slice),
// but does so once, here, at generation time, and emits Go source text
// that constructs the chosen container directly — calling into frozen's
// flat, tag-free constructors (NewDenseScalarMap, NewFlatBinarySearchMap,
// and so on) wherever the chosen layout is fully determined by the
// manifest's own keys, so the emitted declaration's static type is the
// concrete container, not a tagged facade that re-dispatches at
// package-init time. Only the branches that still require building a hash
// table (no dense/sparse range fits, or the key set is too large for a
// scan) fall back to the tagged NewScalarMap/NewIntMap/NewStringMap/
// NewHashMap constructors, since building that table is the same
// per-entry work whether or not a tag wraps the result.
//
// © 2025 frozen authors.
package emit

import "github.com/pkg/errors"

// scanThreshold, orderedScanThreshold and eytzingerThreshold mirror the
// unexported constants of the same name in the root package's
// thresholds.go: emit.go must pick the same tier the runtime facades would
// for the same key set, so these values are kept in lockstep by hand (the
// root package's constants are unexported and so unreachable from here).
const (
	scanThreshold        = 4
	orderedScanThreshold = 6
	eytzingerThreshold   = 64
)

// Visibility controls the emitted symbol's capitalization.
type Visibility int

const (
	Exported Visibility = iota
	Unexported
)

// Config is the builder every Emit* entry point consumes: key type, value
// type (absent = set), optional symbol name, optional alias name,
// const-keys flag, const-values flag, visibility, mutability flag, static
// flag.
type Config struct {
	// Package is the generated file's package clause.
	Package string
	// KeyType is the Go type of each key, as source text (e.g. "int",
	// "string", "orders.Status").
	KeyType string
	// ValueType is the Go type of each value, as source text. Empty means
	// this is a set, not a map.
	ValueType string
	// Symbol is the name of the emitted package-level declaration. Empty
	// means Emit* returns a bare expression instead of a declaration.
	Symbol string
	// Alias, if non-empty, emits a second declaration of this name as a
	// type alias or re-export of Symbol. Requires Symbol.
	Alias string
	// ConstKeys and ConstValues report whether every key/value literal is
	// a compile-time constant expression. When both hold and Mutable is
	// false, the emitted declaration initializes eagerly at package scope;
	// otherwise it is wrapped in a sync.OnceValue-backed accessor.
	ConstKeys   bool
	ConstValues bool
	// Visibility controls whether Symbol (and its accessor, when one is
	// emitted) is exported.
	Visibility Visibility
	// Mutable marks the generated declaration's values as intended for
	// in-place mutation via GetMut/GetManyMut. Mutually exclusive with
	// Static.
	Mutable bool
	// Static requests a plain package-level var instead of a lazily
	// initialized accessor function. Requires Symbol. Mutually exclusive
	// with Mutable.
	Static bool
}

var (
	// ErrMutableStatic mirrors frozen.ErrMutableStatic for callers that
	// only import internal/emit's test surface.
	ErrMutableStatic = errors.New("frozen/emit: mutable and static are mutually exclusive")
	// ErrStaticRequiresSymbol mirrors frozen.ErrStaticRequiresSymbol.
	ErrStaticRequiresSymbol = errors.New("frozen/emit: static requires a symbol name")
	// ErrAliasRequiresSymbol mirrors frozen.ErrAliasRequiresSymbol.
	ErrAliasRequiresSymbol = errors.New("frozen/emit: alias requires a symbol name")
)

func (c Config) validate() error {
	if c.Mutable && c.Static {
		return ErrMutableStatic
	}
	if c.Static && c.Symbol == "" {
		return ErrStaticRequiresSymbol
	}
	if c.Alias != "" && c.Symbol == "" {
		return ErrAliasRequiresSymbol
	}
	return nil
}

func (c Config) exported() bool { return c.Visibility == Exported }

func (c Config) symbolOrDefault(fallback string) string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return fallback
}

// isSet reports whether this configuration describes a set rather than a
// map.
func (c Config) isSet() bool { return c.ValueType == "" }
