package frozen

// hash_map.go implements the hash facade: scan below a small N, otherwise a
// general hash map over an opaque comparable key using BridgeHasher. This
// is the facade NewMap and NewSet always build, whatever the key type.
//
// © 2025 frozen authors.

import (
	"github.com/Voskan/frozen/internal/containers"
	"github.com/Voskan/frozen/internal/frozenhash"
	"github.com/Voskan/frozen/internal/hashtable"
	"github.com/Voskan/frozen/internal/telemetry"
)

type hashTag int

const (
	hashTagScan hashTag = iota
	hashTagHash
)

// HashMap is the frozen map facade for opaque comparable keys: no assumed
// order, no scalar index, no byte-sliceable shape — only == and a generic
// byte-level hash of the key's representation.
type HashMap[K comparable, V any] struct {
	tag  hashTag
	scan *containers.ScanMap[K, V]
	hash *containers.HashMap[K, V, uint32]
}

// NewHashMap builds a frozen opaque-key hash map. Duplicate keys resolve
// keep-last, detected via a scratch hash set rather than a sort (sorting
// would require an order K doesn't necessarily have).
func NewHashMap[K comparable, V any](entries []Entry[K, V], opts ...Option[K]) (*HashMap[K, V], error) {
	cfg := applyOptions(opts)
	bridge := frozenhash.NewBridgeHasher[K](cfg.hashSeed())
	return newHashMap(entries, cfg, bridge.Hash)
}

// NewHashMapWithHasher builds a frozen opaque-key hash map using a
// caller-supplied hasher instead of the default bridge hasher — for key
// types where the caller knows a cheaper or better-distributed hash than
// hashing the raw memory representation.
func NewHashMapWithHasher[K comparable, V any](entries []Entry[K, V], h frozenhash.Hasher[K], opts ...Option[K]) (*HashMap[K, V], error) {
	cfg := applyOptions(opts)
	return newHashMap(entries, cfg, h.Hash)
}

func newHashMap[K comparable, V any](entries []Entry[K, V], cfg *config[K], hashOf func(K) uint64) (*HashMap[K, V], error) {
	deduped := dedupUnsortedKeepLast(entries)
	internalEntries := toContainerEntries(deduped)

	m := &HashMap[K, V]{}

	if len(deduped) < scanThreshold {
		m.tag = hashTagScan
		m.scan = containers.NewScanMap(internalEntries, func(a, b K) bool { return a == b })
		cfg.logger_().ConstructionChose(telemetry.VariantScan, len(deduped))
		cfg.sink().ObserveConstruction(telemetry.VariantScan, len(deduped))
		return m, nil
	}

	hashes := make([]uint64, len(deduped))
	for i, e := range deduped {
		hashes[i] = hashOf(e.Key)
	}

	built, err := hashtable.Build[uint32](hashes)
	if err != nil {
		return nil, ErrHashTableBuildFailed
	}
	reordered := reorder(internalEntries, built.Order)
	hm := containers.NewHashMap[K, V, uint32](reordered, hashOf, built, func(a, b K) bool { return a == b })

	m.tag = hashTagHash
	m.hash = hm

	variant := telemetry.VariantHashCollision
	if hm.NoCollisions() {
		variant = telemetry.VariantHashNoCollide
	}
	cfg.logger_().ConstructionChose(variant, len(deduped))
	cfg.sink().ObserveConstruction(variant, len(deduped))

	return m, nil
}

// dedupUnsortedKeepLast resolves duplicate keys without relying on an
// order over K: a later occurrence overwrites the recorded position of an
// earlier one, then the surviving entries are compacted, each at the
// position of its key's last occurrence. A two-pass approach over a scratch hash set,
// since opaque comparable keys cannot be sorted.
func dedupUnsortedKeepLast[K comparable, V any](entries []Entry[K, V]) []Entry[K, V] {
	lastPos := make(map[K]int, len(entries))
	for i, e := range entries {
		lastPos[e.Key] = i
	}
	out := make([]Entry[K, V], 0, len(lastPos))
	seen := make(map[K]struct{}, len(lastPos))
	for i, e := range entries {
		if lastPos[e.Key] != i {
			continue
		}
		if _, ok := seen[e.Key]; ok {
			continue
		}
		seen[e.Key] = struct{}{}
		out = append(out, e)
	}
	return out
}

func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if m.tag == hashTagScan {
		return m.scan.Get(key)
	}
	return m.hash.Get(key)
}

func (m *HashMap[K, V]) GetKeyValue(key K) (K, V, bool) {
	if m.tag == hashTagScan {
		return m.scan.GetKeyValue(key)
	}
	return m.hash.GetKeyValue(key)
}

func (m *HashMap[K, V]) GetMut(key K) (*V, bool) {
	if m.tag == hashTagScan {
		return m.scan.GetMut(key)
	}
	return m.hash.GetMut(key)
}

func (m *HashMap[K, V]) GetManyMut(keys []K) ([]*V, bool) {
	if m.tag == hashTagScan {
		return m.scan.GetManyMut(keys)
	}
	return m.hash.GetManyMut(keys)
}

func (m *HashMap[K, V]) ContainsKey(key K) bool {
	if m.tag == hashTagScan {
		return m.scan.ContainsKey(key)
	}
	return m.hash.ContainsKey(key)
}

func (m *HashMap[K, V]) Len() int {
	if m.tag == hashTagScan {
		return m.scan.Len()
	}
	return m.hash.Len()
}

func (m *HashMap[K, V]) At(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("frozen: key not present in HashMap")
	}
	return v
}

func (m *HashMap[K, V]) rawEntries() []containers.Entry[K, V] {
	if m.tag == hashTagScan {
		return m.scan.Entries()
	}
	return m.hash.Entries()
}

func (m *HashMap[K, V]) Entries() []Entry[K, V] { return convertEntries(m.rawEntries()) }
func (m *HashMap[K, V]) Keys() []K              { return keysFrom(m.rawEntries()) }
func (m *HashMap[K, V]) Values() []V            { return valuesFrom(m.rawEntries()) }

var _ Map[int, string] = (*HashMap[int, string])(nil)
