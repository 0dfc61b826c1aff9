package frozen

// string_map.go implements the string facade: scan below a small N,
// otherwise a hash map using the cheapest hasher the slice-key analyzer
// (internal/analyze.Slice) can justify for this particular key set —
// whole-key length, a left- or right-anchored sub-slice, or a full bridge
// hash as the fallback.
//
// © 2025 frozen authors.

import (
	"sort"

	"github.com/Voskan/frozen/internal/analyze"
	"github.com/Voskan/frozen/internal/containers"
	"github.com/Voskan/frozen/internal/frozenhash"
	"github.com/Voskan/frozen/internal/hashtable"
	"github.com/Voskan/frozen/internal/telemetry"
)

type stringTag int

const (
	stringTagScan stringTag = iota
	stringTagHash
)

// StringMap is the frozen map facade for string keys.
type StringMap[V any] struct {
	tag  stringTag
	scan *containers.ScanMap[string, V]
	hash *containers.HashMap[string, V, uint32]
}

// NewStringMap builds a frozen string map. Duplicate keys resolve
// keep-last.
func NewStringMap[V any](entries []Entry[string, V], opts ...Option[string]) (*StringMap[V], error) {
	cfg := applyOptions(opts)
	seed := cfg.hashSeed()

	sorted := append([]Entry[string, V](nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	sorted = dedupSortedKeepLast(sorted, func(a, b string) bool { return a == b })

	internalEntries := toContainerEntries(sorted)
	m := &StringMap[V]{}

	if len(sorted) < scanThreshold {
		m.tag = stringTagScan
		m.scan = containers.NewScanMap(internalEntries, func(a, b string) bool { return a == b })
		cfg.logger_().ConstructionChose(telemetry.VariantScan, len(sorted))
		cfg.sink().ObserveConstruction(telemetry.VariantScan, len(sorted))
		return m, nil
	}

	keys := make([]string, len(sorted))
	for i, e := range sorted {
		keys[i] = e.Key
	}

	bh := func(b []byte) uint64 { return frozenhash.HashBytes(seed, b) }
	result := analyze.Slice(keys, bh)
	hashOf := stringHasherFor(result, seed)

	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hashOf(k)
	}

	built, err := hashtable.Build[uint32](hashes)
	if err != nil {
		return nil, ErrHashTableBuildFailed
	}
	reordered := reorder(internalEntries, built.Order)
	hm := containers.NewHashMap[string, V, uint32](reordered, hashOf, built, func(a, b string) bool { return a == b })

	m.tag = stringTagHash
	m.hash = hm

	variant := telemetry.VariantHashCollision
	if hm.NoCollisions() {
		variant = telemetry.VariantHashNoCollide
	}
	cfg.logger_().ConstructionChose(variant, len(sorted))
	cfg.sink().ObserveConstruction(variant, len(sorted))

	return m, nil
}

func stringHasherFor(result analyze.SliceResult, seed frozenhash.Seed) func(string) uint64 {
	switch result.Kind {
	case analyze.SliceLength:
		h := frozenhash.NewLengthHasher()
		return h.Hash
	case analyze.SliceLeftSub:
		h := frozenhash.NewLeftSubSliceHasher(seed, result.Index, result.Index+result.Len)
		return h.Hash
	case analyze.SliceRightSub:
		h := frozenhash.NewRightSubSliceHasher(seed, result.Index, result.Index+result.Len)
		return h.Hash
	default:
		h := frozenhash.NewBridgeHasher[string](seed)
		return h.Hash
	}
}

func (m *StringMap[V]) Get(key string) (V, bool) {
	if m.tag == stringTagScan {
		return m.scan.Get(key)
	}
	return m.hash.Get(key)
}

func (m *StringMap[V]) GetKeyValue(key string) (string, V, bool) {
	if m.tag == stringTagScan {
		return m.scan.GetKeyValue(key)
	}
	return m.hash.GetKeyValue(key)
}

func (m *StringMap[V]) GetMut(key string) (*V, bool) {
	if m.tag == stringTagScan {
		return m.scan.GetMut(key)
	}
	return m.hash.GetMut(key)
}

func (m *StringMap[V]) GetManyMut(keys []string) ([]*V, bool) {
	if m.tag == stringTagScan {
		return m.scan.GetManyMut(keys)
	}
	return m.hash.GetManyMut(keys)
}

func (m *StringMap[V]) ContainsKey(key string) bool {
	if m.tag == stringTagScan {
		return m.scan.ContainsKey(key)
	}
	return m.hash.ContainsKey(key)
}

func (m *StringMap[V]) Len() int {
	if m.tag == stringTagScan {
		return m.scan.Len()
	}
	return m.hash.Len()
}

func (m *StringMap[V]) At(key string) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in StringMap")
	}
	return v
}

func (m *StringMap[V]) rawEntries() []containers.Entry[string, V] {
	if m.tag == stringTagScan {
		return m.scan.Entries()
	}
	return m.hash.Entries()
}

func (m *StringMap[V]) Entries() []Entry[string, V] { return convertEntries(m.rawEntries()) }
func (m *StringMap[V]) Keys() []string              { return keysFrom(m.rawEntries()) }
func (m *StringMap[V]) Values() []V                 { return valuesFrom(m.rawEntries()) }

var _ Map[string, int] = (*StringMap[int])(nil)
