package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Voskan/frozen/internal/analyze"
)

// integerKeyTypes are the KeyType spellings EmitScalar treats as bare
// integers (routed through frozen.NewDenseIntMap/NewIntMap/... families)
// rather than a user-defined frozen.Scalar implementation (routed through
// the matching frozen.*ScalarMap/Set family).
var integerKeyTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
}

type declData struct {
	Package     string
	Name        string
	ReturnType  string
	Constructor string
	Static      bool
	HasAlias    bool
	Alias       string
	Variant     string
}

const declTemplate = `package {{.Package}}

// {{.Name}} was generated by frozengen. Chosen layout: {{.Variant}}.
{{if .Static}}var {{.Name}} = {{.Constructor}}
{{else}}var {{.Name}}Once = sync.OnceValue(func() {{.ReturnType}} {
	return {{.Constructor}}
})

func {{.Name}}() {{.ReturnType}} { return {{.Name}}Once() }
{{end}}
{{if .HasAlias}}
// {{.Alias}} is an alias for {{.Name}}.
var {{.Alias}} = {{.Name}}
{{end}}
`

// mustWrap wraps a constructor expression that still returns (T, error) in
// frozen.Must, turning it into a bare T. Constructors this package emits
// for a fully generation-time-resolved layout (dense/sparse scalar, every
// ordered variant) never fail and so are never wrapped; only the tagged,
// fallback-carrying constructors (the hash-table branches) can error.
func mustWrap(expr string) string { return fmt.Sprintf("frozen.Must(%s)", expr) }

func entryLiteral(keyType, valueType string, entries []Entry) string {
	var b strings.Builder
	if valueType == "" {
		b.WriteString(fmt.Sprintf("[]%s{", keyType))
		for _, e := range entries {
			b.WriteString(e.KeyLiteral)
			b.WriteString(", ")
		}
		b.WriteString("}")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("[]frozen.Entry[%s, %s]{", keyType, valueType))
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("{Key: %s, Value: %s}, ", e.KeyLiteral, e.ValueLiteral))
	}
	b.WriteString("}")
	return b.String()
}

func renderDecl(cfg Config, fallbackName, returnType, constructor, variant string) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	name := visibilityName(cfg, fallbackName)
	data := declData{
		Package:     cfg.Package,
		Name:        name,
		ReturnType:  returnType,
		Constructor: constructor,
		Static:      cfg.Static || (cfg.ConstKeys && cfg.ConstValues && !cfg.Mutable),
		Variant:     variant,
	}
	if cfg.Alias != "" {
		data.HasAlias = true
		data.Alias = visibilityName(Config{Symbol: cfg.Alias, Visibility: cfg.Visibility}, cfg.Alias)
	}

	return render(declTemplate, data)
}

// EmitScalar emits a declaration over scalar (dense/sparse-range-eligible)
// keys. The scalar analyzer runs here, at generation time, over the
// manifest's own key indices: when the verdict is dense or sparse, the
// emitted declaration calls directly into the matching flat (tag-free,
// analyzer-free) constructor — frozen.NewDenseScalarMap/NewSparseScalarMap
// for a user Scalar type, or frozen.NewDenseIntMap/NewSparseIntMap for a
// bare integer key type — with entries pre-sorted and min/max/span baked
// in as literal arguments, so the generated var has a concrete monomorphic
// type and no runtime tag to switch on. Only the general verdict (no dense
// or sparse range fits) still routes through the tagged
// NewScalarMap/NewIntMap constructor, since building its hash table is the
// same per-entry work whether or not a tag wraps the result.
func EmitScalar(cfg Config, entries []Entry) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].KeyIndex < sorted[j].KeyIndex })

	indices := make([]uint64, len(sorted))
	for i, e := range sorted {
		indices[i] = e.KeyIndex
	}

	result := analyze.Scalar(indices)
	variant := scalarVariantName(result)
	useIntFamily := integerKeyTypes[cfg.KeyType]

	switch result {
	case analyze.ScalarDense:
		min, max := scalarSpan(indices)
		return emitScalarRange(cfg, sorted, useIntFamily, "Dense", fmt.Sprintf("%d, %d", min, max), variant)
	case analyze.ScalarSparse:
		min, max := scalarSpan(indices)
		span := int(max-min) + 1
		return emitScalarRange(cfg, sorted, useIntFamily, "Sparse", fmt.Sprintf("%d, %d", min, span), variant)
	default:
		return emitScalarHashFallback(cfg, sorted, useIntFamily, variant)
	}
}

// emitScalarRange emits a call into NewDense{Scalar,Int}{Map,Set} or
// NewSparse{Scalar,Int}{Map,Set}, depending on kind ("Dense" or "Sparse")
// and whether the key type is a bare integer. tailArgs is the already
// rendered min/max (dense) or min/span (sparse) literal argument text.
func emitScalarRange(cfg Config, sorted []Entry, useIntFamily bool, kind, tailArgs, variant string) (string, error) {
	family := "Scalar"
	if useIntFamily {
		family = "Int"
	}

	if cfg.isSet() {
		lit := entryLiteral(cfg.KeyType, "", sorted)
		fallback := fmt.Sprintf("Frozen%s%sSet", kind, family)
		ctor := fmt.Sprintf("frozen.New%s%sSet[%s](%s, %s)", kind, family, cfg.KeyType, lit, tailArgs)
		returnType := fmt.Sprintf("*frozen.%s%sSet[%s]", kind, family, cfg.KeyType)
		return renderDecl(cfg, fallback, returnType, ctor, variant)
	}

	lit := entryLiteral(cfg.KeyType, cfg.ValueType, sorted)
	fallback := fmt.Sprintf("Frozen%s%sMap", kind, family)
	ctor := fmt.Sprintf("frozen.New%s%sMap[%s, %s](%s, %s)", kind, family, cfg.KeyType, cfg.ValueType, lit, tailArgs)
	returnType := fmt.Sprintf("*frozen.%s%sMap[%s, %s]", kind, family, cfg.KeyType, cfg.ValueType)
	return renderDecl(cfg, fallback, returnType, ctor, variant)
}

func emitScalarHashFallback(cfg Config, sorted []Entry, useIntFamily bool, variant string) (string, error) {
	if cfg.isSet() {
		lit := entryLiteral(cfg.KeyType, "", sorted)
		if useIntFamily {
			return renderDecl(cfg, "FrozenIntSet",
				fmt.Sprintf("*frozen.IntSet[%s]", cfg.KeyType),
				mustWrap(fmt.Sprintf("frozen.NewIntSet[%s](%s)", cfg.KeyType, lit)), variant)
		}
		return renderDecl(cfg, "FrozenScalarSet",
			fmt.Sprintf("*frozen.ScalarSet[%s]", cfg.KeyType),
			mustWrap(fmt.Sprintf("frozen.NewScalarSet[%s](%s)", cfg.KeyType, lit)), variant)
	}

	lit := entryLiteral(cfg.KeyType, cfg.ValueType, sorted)
	if useIntFamily {
		return renderDecl(cfg, "FrozenIntMap",
			fmt.Sprintf("*frozen.IntMap[%s, %s]", cfg.KeyType, cfg.ValueType),
			mustWrap(fmt.Sprintf("frozen.NewIntMap[%s, %s](%s)", cfg.KeyType, cfg.ValueType, lit)), variant)
	}
	return renderDecl(cfg, "FrozenScalarMap",
		fmt.Sprintf("*frozen.ScalarMap[%s, %s]", cfg.KeyType, cfg.ValueType),
		mustWrap(fmt.Sprintf("frozen.NewScalarMap[%s, %s](%s)", cfg.KeyType, cfg.ValueType, lit)), variant)
}

func scalarSpan(sortedIndices []uint64) (min, max uint64) {
	if len(sortedIndices) == 0 {
		return 0, 0
	}
	return sortedIndices[0], sortedIndices[len(sortedIndices)-1]
}

func scalarVariantName(r analyze.ScalarResult) string {
	switch r {
	case analyze.ScalarDense:
		return "dense_scalar"
	case analyze.ScalarSparse:
		return "sparse_scalar"
	default:
		return "hash (pass-through)"
	}
}

// EmitString emits a declaration over string keys. Below the scan
// threshold the emitted declaration calls frozen.NewFlatScanMap/Set
// directly — no analyzer, no tag. At or above it, the slice-key analyzer's
// hasher choice is still an internal detail of the tagged
// NewStringMap/NewStringSet constructor: building the hash table is real
// per-entry work either way, so that branch is left routed through the
// tagged facade.
func EmitString(cfg Config, entries []Entry) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	if len(entries) < scanThreshold {
		return emitStringScan(cfg, entries)
	}

	if cfg.isSet() {
		lit := stringSliceLiteral(entries)
		return renderDecl(cfg, "FrozenStringSet",
			"*frozen.StringSet",
			mustWrap(fmt.Sprintf("frozen.NewStringSet(%s)", lit)), "string facade")
	}
	lit := entryLiteral("string", cfg.ValueType, entries)
	return renderDecl(cfg, "FrozenStringMap",
		fmt.Sprintf("*frozen.StringMap[%s]", cfg.ValueType),
		mustWrap(fmt.Sprintf("frozen.NewStringMap[%s](%s)", cfg.ValueType, lit)), "string facade")
}

func emitStringScan(cfg Config, entries []Entry) (string, error) {
	equal := `func(a, b string) bool { return a == b }`
	if cfg.isSet() {
		lit := stringSliceLiteral(entries)
		ctor := fmt.Sprintf("frozen.NewFlatScanSet[string](%s, %s)", lit, equal)
		return renderDecl(cfg, "FrozenScanStringSet", "*frozen.FlatScanSet[string]", ctor, "scan")
	}
	lit := entryLiteral("string", cfg.ValueType, entries)
	ctor := fmt.Sprintf("frozen.NewFlatScanMap[string, %s](%s, %s)", cfg.ValueType, lit, equal)
	return renderDecl(cfg, "FrozenScanStringMap", fmt.Sprintf("*frozen.FlatScanMap[string, %s]", cfg.ValueType), ctor, "scan")
}

func stringSliceLiteral(entries []Entry) string {
	var b strings.Builder
	b.WriteString("[]string{")
	for _, e := range entries {
		b.WriteString(e.KeyLiteral)
		b.WriteString(", ")
	}
	b.WriteString("}")
	return b.String()
}

// EmitHash emits a declaration over an opaque comparable key type. Below
// the scan threshold the emitted declaration calls
// frozen.NewFlatScanMap/Set directly, using == as the equality test since
// an opaque comparable type has no cheaper option. At or above it,
// building the hash table is real per-entry work regardless of a
// surrounding tag, so the declaration routes through the tagged
// NewHashMap/NewHashSet constructor as before.
func EmitHash(cfg Config, entries []Entry) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	if len(entries) < scanThreshold {
		return emitHashScan(cfg, entries)
	}

	if cfg.isSet() {
		lit := entryLiteral(cfg.KeyType, "", entries)
		return renderDecl(cfg, "FrozenHashSet",
			fmt.Sprintf("*frozen.HashSet[%s]", cfg.KeyType),
			mustWrap(fmt.Sprintf("frozen.NewHashSet[%s](%s)", cfg.KeyType, lit)), "hash facade")
	}
	lit := entryLiteral(cfg.KeyType, cfg.ValueType, entries)
	return renderDecl(cfg, "FrozenHashMap",
		fmt.Sprintf("*frozen.HashMap[%s, %s]", cfg.KeyType, cfg.ValueType),
		mustWrap(fmt.Sprintf("frozen.NewHashMap[%s, %s](%s)", cfg.KeyType, cfg.ValueType, lit)), "hash facade")
}

func emitHashScan(cfg Config, entries []Entry) (string, error) {
	equal := fmt.Sprintf("func(a, b %s) bool { return a == b }", cfg.KeyType)
	if cfg.isSet() {
		lit := entryLiteral(cfg.KeyType, "", entries)
		ctor := fmt.Sprintf("frozen.NewFlatScanSet[%s](%s, %s)", cfg.KeyType, lit, equal)
		return renderDecl(cfg, "FrozenScanHashSet", fmt.Sprintf("*frozen.FlatScanSet[%s]", cfg.KeyType), ctor, "scan")
	}
	lit := entryLiteral(cfg.KeyType, cfg.ValueType, entries)
	ctor := fmt.Sprintf("frozen.NewFlatScanMap[%s, %s](%s, %s)", cfg.KeyType, cfg.ValueType, lit, equal)
	return renderDecl(cfg, "FrozenScanHashMap", fmt.Sprintf("*frozen.FlatScanMap[%s, %s]", cfg.KeyType, cfg.ValueType), ctor, "scan")
}

// EmitOrdered emits a declaration over a cmp.Ordered key type. All four
// ordered layouts (scan, ordered-scan, binary search, Eytzinger) are
// comparison-based, with no hash table to build, so the scalar facade's
// generation-time analyzer trick applies to every tier here: the same
// scan/ordered-scan/Eytzinger thresholds the tagged OrderedMap constructor
// uses are evaluated once, here, over the manifest's literal entries, and
// the declaration calls directly into the matching
// frozen.NewFlat{Scan,OrderedScan,BinarySearch,Eytzinger}{Map,Set} — never
// the tagged OrderedMap/OrderedSet constructor.
func EmitOrdered(cfg Config, entries []Entry) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return orderedLess(sorted[i].KeyLiteral, sorted[j].KeyLiteral) })

	n := len(sorted)
	switch {
	case n < scanThreshold:
		return emitOrderedFlat(cfg, sorted, "Scan", "NewFlatScanMap", "NewFlatScanSet", orderedEqualArg(cfg))
	case n < orderedScanThreshold:
		return emitOrderedFlat(cfg, sorted, "OrderedScan", "NewFlatOrderedScanMap", "NewFlatOrderedScanSet", "")
	case n < eytzingerThreshold:
		return emitOrderedFlat(cfg, sorted, "BinarySearch", "NewFlatBinarySearchMap", "NewFlatBinarySearchSet", "")
	default:
		return emitOrderedFlat(cfg, sorted, "Eytzinger", "NewFlatEytzingerMap", "NewFlatEytzingerSet", "")
	}
}

// orderedLess provides a best-effort ascending ordering over key literal
// source text for manifest-driven sorting: numeric literals compare
// numerically, everything else falls back to a lexical comparison. A
// manifest author who needs an exact tie-break for non-numeric literals
// (e.g. qualified identifiers) should list entries pre-sorted; the
// generated Flat*Map's correctness depends on sortedness, not on this
// function picking the one true ordering for arbitrary Go expressions.
func orderedLess(a, b string) bool {
	if x, errA := strconv.ParseInt(a, 0, 64); errA == nil {
		if y, errB := strconv.ParseInt(b, 0, 64); errB == nil {
			return x < y
		}
	}
	if x, errA := strconv.ParseFloat(a, 64); errA == nil {
		if y, errB := strconv.ParseFloat(b, 64); errB == nil {
			return x < y
		}
	}
	return a < b
}

func orderedEqualArg(cfg Config) string {
	return fmt.Sprintf("func(a, b %s) bool { return a == b }", cfg.KeyType)
}

func emitOrderedFlat(cfg Config, sorted []Entry, tierName, mapCtor, setCtor, equalArg string) (string, error) {
	if cfg.isSet() {
		lit := entryLiteral(cfg.KeyType, "", sorted)
		var ctor string
		if equalArg != "" {
			ctor = fmt.Sprintf("frozen.%s[%s](%s, %s)", setCtor, cfg.KeyType, lit, equalArg)
		} else {
			ctor = fmt.Sprintf("frozen.%s[%s](%s)", setCtor, cfg.KeyType, lit)
		}
		fallback := fmt.Sprintf("Frozen%sSet", tierName)
		returnType := fmt.Sprintf("*frozen.Flat%sSet[%s]", tierName, cfg.KeyType)
		return renderDecl(cfg, fallback, returnType, ctor, tierName)
	}

	lit := entryLiteral(cfg.KeyType, cfg.ValueType, sorted)
	var ctor string
	if equalArg != "" {
		ctor = fmt.Sprintf("frozen.%s[%s, %s](%s, %s)", mapCtor, cfg.KeyType, cfg.ValueType, lit, equalArg)
	} else {
		ctor = fmt.Sprintf("frozen.%s[%s, %s](%s)", mapCtor, cfg.KeyType, cfg.ValueType, lit)
	}
	fallback := fmt.Sprintf("Frozen%sMap", tierName)
	returnType := fmt.Sprintf("*frozen.Flat%sMap[%s, %s]", tierName, cfg.KeyType, cfg.ValueType)
	return renderDecl(cfg, fallback, returnType, ctor, tierName)
}
