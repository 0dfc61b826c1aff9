package frozen

// scalar_map.go implements the scalar facade: a tagged union over
// {dense-scalar | sparse-scalar | hash-with-pass-through-hasher}, chosen by
// running the scalar-key analyzer once at construction and never
// re-evaluated afterward.
//
// © 2025 frozen authors.

import (
	"sort"

	"github.com/Voskan/frozen/internal/analyze"
	"github.com/Voskan/frozen/internal/containers"
	"github.com/Voskan/frozen/internal/hashtable"
	"github.com/Voskan/frozen/internal/telemetry"
)

type scalarTag int

const (
	scalarTagDense scalarTag = iota
	scalarTagSparse
	scalarTagHash
)

// ScalarMap is the frozen map facade for keys satisfying Scalar: integers
// (via NewIntMap's adapter) or user enum-like types implementing Index().
type ScalarMap[K Scalar, V any] struct {
	tag    scalarTag
	dense  *containers.DenseScalarMap[K, V]
	sparse *containers.SparseScalarMap[K, V]
	hash   *containers.HashMap[K, V, uint32]
}

// NewScalarMap builds a frozen scalar map. Input order is ignored;
// duplicate keys are resolved keep-last (the last occurrence in entries
// wins).
func NewScalarMap[K Scalar, V any](entries []Entry[K, V], opts ...Option[K]) (*ScalarMap[K, V], error) {
	cfg := applyOptions(opts)

	sorted := append([]Entry[K, V](nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Index() < sorted[j].Key.Index()
	})
	sorted = dedupSortedKeepLast(sorted, func(a, b K) bool { return a.Index() == b.Index() })

	internal := toContainerEntries(sorted)

	indices := make([]uint64, len(sorted))
	for i, e := range sorted {
		indices[i] = e.Key.Index()
	}

	m := &ScalarMap[K, V]{}
	var variant telemetry.Variant

	indexOf := func(k K) uint64 { return k.Index() }

	switch analyze.Scalar(indices) {
	case analyze.ScalarDense:
		min, max := scalarSpan(indices)
		m.tag = scalarTagDense
		m.dense = containers.NewDenseScalarMap(internal, indexOf, min, max)
		variant = telemetry.VariantDenseScalar

	case analyze.ScalarSparse:
		min, max := scalarSpan(indices)
		m.tag = scalarTagSparse
		m.sparse = containers.NewSparseScalarMap(internal, indexOf, min, int(max-min+1))
		variant = telemetry.VariantSparseScalar

	default:
		hm, err := buildPassthroughHash[K, V](internal, indices, indexOf)
		if err != nil {
			return nil, err
		}
		m.tag = scalarTagHash
		m.hash = hm
		variant = telemetry.VariantHashCollision
		if hm.NoCollisions() {
			variant = telemetry.VariantHashNoCollide
		}
	}

	cfg.logger_().ConstructionChose(variant, len(sorted))
	cfg.sink().ObserveConstruction(variant, len(sorted))
	return m, nil
}

func scalarSpan(sortedIndices []uint64) (min, max uint64) {
	if len(sortedIndices) == 0 {
		return 0, 0
	}
	return sortedIndices[0], sortedIndices[len(sortedIndices)-1]
}

func buildPassthroughHash[K Scalar, V any](entries []containers.Entry[K, V], indices []uint64, indexOf func(K) uint64) (*containers.HashMap[K, V, uint32], error) {
	built, err := hashtable.Build[uint32](indices)
	if err != nil {
		return nil, ErrHashTableBuildFailed
	}
	reordered := reorder(entries, built.Order)
	return containers.NewHashMap[K, V, uint32](reordered, indexOf, built, func(a, b K) bool { return a == b }), nil
}

func (m *ScalarMap[K, V]) Get(key K) (V, bool) {
	switch m.tag {
	case scalarTagDense:
		return m.dense.Get(key)
	case scalarTagSparse:
		return m.sparse.Get(key)
	default:
		return m.hash.Get(key)
	}
}

func (m *ScalarMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	switch m.tag {
	case scalarTagDense:
		return m.dense.GetKeyValue(key)
	case scalarTagSparse:
		return m.sparse.GetKeyValue(key)
	default:
		return m.hash.GetKeyValue(key)
	}
}

func (m *ScalarMap[K, V]) GetMut(key K) (*V, bool) {
	switch m.tag {
	case scalarTagDense:
		return m.dense.GetMut(key)
	case scalarTagSparse:
		return m.sparse.GetMut(key)
	default:
		return m.hash.GetMut(key)
	}
}

func (m *ScalarMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	switch m.tag {
	case scalarTagDense:
		return m.dense.GetManyMut(keys)
	case scalarTagSparse:
		return m.sparse.GetManyMut(keys)
	default:
		return m.hash.GetManyMut(keys)
	}
}

func (m *ScalarMap[K, V]) ContainsKey(key K) bool {
	switch m.tag {
	case scalarTagDense:
		return m.dense.ContainsKey(key)
	case scalarTagSparse:
		return m.sparse.ContainsKey(key)
	default:
		return m.hash.ContainsKey(key)
	}
}

func (m *ScalarMap[K, V]) Len() int {
	switch m.tag {
	case scalarTagDense:
		return m.dense.Len()
	case scalarTagSparse:
		return m.sparse.Len()
	default:
		return m.hash.Len()
	}
}

func (m *ScalarMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in ScalarMap")
	}
	return v
}

func (m *ScalarMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.rawEntries()) }
func (m *ScalarMap[K, V]) Keys() []K              { return keysFrom(m.rawEntries()) }
func (m *ScalarMap[K, V]) Values() []V            { return valuesFrom(m.rawEntries()) }

func (m *ScalarMap[K, V]) rawEntries() []containers.Entry[K, V] {
	switch m.tag {
	case scalarTagDense:
		return m.dense.Entries()
	case scalarTagSparse:
		return m.sparse.Entries()
	default:
		return m.hash.Entries()
	}
}

var _ Map[scalarAdapter[int], string] = (*ScalarMap[scalarAdapter[int], string])(nil)
