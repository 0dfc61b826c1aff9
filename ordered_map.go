package frozen

// ordered_map.go implements the ordered facade: scan below a small N,
// ordered-scan below a slightly larger one, then a choice between binary
// search and the cache-oblivious Eytzinger layout once the collection is
// large enough for access pattern to matter more than construction cost.
//
// © 2025 frozen authors.

import (
	"cmp"
	"sort"

	"github.com/Voskan/frozen/internal/containers"
	"github.com/Voskan/frozen/internal/telemetry"
)

type orderedTag int

const (
	orderedTagScan orderedTag = iota
	orderedTagOrderedScan
	orderedTagBinarySearch
	orderedTagEytzinger
)

// OrderedMap is the frozen map facade for totally-ordered keys.
type OrderedMap[K cmp.Ordered, V any] struct {
	tag          orderedTag
	scan         *containers.ScanMap[K, V]
	orderedScan  *containers.OrderedScanMap[K, V]
	binarySearch *containers.BinarySearchMap[K, V]
	eytzinger    *containers.EytzingerMap[K, V]
}

// NewOrderedMap builds a frozen ordered map. Duplicate keys resolve
// keep-last.
func NewOrderedMap[K cmp.Ordered, V any](entries []Entry[K, V], opts ...Option[K]) (*OrderedMap[K, V], error) {
	cfg := applyOptions(opts)

	sorted := append([]Entry[K, V](nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	sorted = dedupSortedKeepLast(sorted, func(a, b K) bool { return a == b })

	less := func(a, b K) bool { return a < b }
	internalEntries := toContainerEntries(sorted)
	n := len(sorted)

	m := &OrderedMap[K, V]{}
	var variant telemetry.Variant

	switch {
	case n < scanThreshold:
		m.tag = orderedTagScan
		m.scan = containers.NewScanMap(internalEntries, func(a, b K) bool { return a == b })
		variant = telemetry.VariantScan

	case n < orderedScanThreshold:
		m.tag = orderedTagOrderedScan
		m.orderedScan = containers.NewOrderedScanMap(internalEntries, less)
		variant = telemetry.VariantOrderedScan

	case n < eytzingerThreshold:
		m.tag = orderedTagBinarySearch
		m.binarySearch = containers.NewBinarySearchMap(internalEntries, less)
		variant = telemetry.VariantBinarySearch

	default:
		m.tag = orderedTagEytzinger
		m.eytzinger = containers.NewEytzingerMap(internalEntries, less)
		variant = telemetry.VariantEytzinger
	}

	cfg.logger_().ConstructionChose(variant, n)
	cfg.sink().ObserveConstruction(variant, n)
	return m, nil
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	switch m.tag {
	case orderedTagScan:
		return m.scan.Get(key)
	case orderedTagOrderedScan:
		return m.orderedScan.Get(key)
	case orderedTagBinarySearch:
		return m.binarySearch.Get(key)
	default:
		return m.eytzinger.Get(key)
	}
}

func (m *OrderedMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	switch m.tag {
	case orderedTagScan:
		return m.scan.GetKeyValue(key)
	case orderedTagOrderedScan:
		return m.orderedScan.GetKeyValue(key)
	case orderedTagBinarySearch:
		return m.binarySearch.GetKeyValue(key)
	default:
		return m.eytzinger.GetKeyValue(key)
	}
}

func (m *OrderedMap[K, V]) GetMut(key K) (*V, bool) {
	switch m.tag {
	case orderedTagScan:
		return m.scan.GetMut(key)
	case orderedTagOrderedScan:
		return m.orderedScan.GetMut(key)
	case orderedTagBinarySearch:
		return m.binarySearch.GetMut(key)
	default:
		return m.eytzinger.GetMut(key)
	}
}

func (m *OrderedMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	switch m.tag {
	case orderedTagScan:
		return m.scan.GetManyMut(keys)
	case orderedTagOrderedScan:
		return m.orderedScan.GetManyMut(keys)
	case orderedTagBinarySearch:
		return m.binarySearch.GetManyMut(keys)
	default:
		return m.eytzinger.GetManyMut(keys)
	}
}

func (m *OrderedMap[K, V]) ContainsKey(key K) bool {
	switch m.tag {
	case orderedTagScan:
		return m.scan.ContainsKey(key)
	case orderedTagOrderedScan:
		return m.orderedScan.ContainsKey(key)
	case orderedTagBinarySearch:
		return m.binarySearch.ContainsKey(key)
	default:
		return m.eytzinger.ContainsKey(key)
	}
}

func (m *OrderedMap[K, V]) Len() int {
	switch m.tag {
	case orderedTagScan:
		return m.scan.Len()
	case orderedTagOrderedScan:
		return m.orderedScan.Len()
	case orderedTagBinarySearch:
		return m.binarySearch.Len()
	default:
		return m.eytzinger.Len()
	}
}

func (m *OrderedMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in OrderedMap")
	}
	return v
}

func (m *OrderedMap[K, V]) rawEntries() []containers.Entry[K, V] {
	switch m.tag {
	case orderedTagScan:
		return m.scan.Entries()
	case orderedTagOrderedScan:
		return m.orderedScan.Entries()
	case orderedTagBinarySearch:
		return m.binarySearch.Entries()
	default:
		return m.eytzinger.Entries()
	}
}

func (m *OrderedMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.rawEntries()) }
func (m *OrderedMap[K, V]) Keys() []K              { return keysFrom(m.rawEntries()) }
func (m *OrderedMap[K, V]) Values() []V            { return valuesFrom(m.rawEntries()) }

var _ Map[int, string] = (*OrderedMap[int, string])(nil)
