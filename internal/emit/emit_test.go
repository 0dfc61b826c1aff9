package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitScalar_DenseIntMap(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", ValueType: "string", Symbol: "Weekdays", Static: true}
	entries := []Entry{
		{KeyLiteral: "0", ValueLiteral: `"Sunday"`, KeyIndex: 0},
		{KeyLiteral: "1", ValueLiteral: `"Monday"`, KeyIndex: 1},
	}
	src, err := EmitScalar(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "package gen")
	assert.Contains(t, src, "Weekdays")
	assert.Contains(t, src, "frozen.NewDenseIntMap[int, string]")
	assert.Contains(t, src, "dense_scalar")
	assert.NotContains(t, src, "sync.OnceValue")
}

// TestEmitScalar_DenseScalarMapConstantExpression covers a 5-element
// dense-range scalar map (N=5, indices 1..5, so min=1 and max=5): the
// emitted declaration must name the concrete DenseScalarMap type and
// initialize it with a single constant expression, with no lazy-init
// wrapper and no re-run of the analyzer at package-init time.
func TestEmitScalar_DenseScalarMapConstantExpression(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "orders.Weekday", ValueType: "string", Symbol: "Weekdays", Static: true}
	entries := []Entry{
		{KeyLiteral: "orders.Weekday(1)", ValueLiteral: `"Monday"`, KeyIndex: 1},
		{KeyLiteral: "orders.Weekday(2)", ValueLiteral: `"Tuesday"`, KeyIndex: 2},
		{KeyLiteral: "orders.Weekday(3)", ValueLiteral: `"Wednesday"`, KeyIndex: 3},
		{KeyLiteral: "orders.Weekday(4)", ValueLiteral: `"Thursday"`, KeyIndex: 4},
		{KeyLiteral: "orders.Weekday(5)", ValueLiteral: `"Friday"`, KeyIndex: 5},
	}
	src, err := EmitScalar(cfg, entries)
	require.NoError(t, err)

	assert.Contains(t, src, "var Weekdays = frozen.NewDenseScalarMap[orders.Weekday, string](")
	assert.Contains(t, src, "1, 5")
	assert.Contains(t, src, "dense_scalar")
	assert.NotContains(t, src, "sync.OnceValue")
	assert.NotContains(t, src, "frozen.Must")
	assert.NotContains(t, src, "frozen.NewScalarMap")
}

func TestEmitScalar_SparseIntSet(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", Symbol: "Digits"}
	entries := []Entry{
		{KeyLiteral: "1", KeyIndex: 1},
		{KeyLiteral: "7", KeyIndex: 7},
	}
	src, err := EmitScalar(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewSparseIntSet[int]")
	assert.Contains(t, src, "sparse_scalar")
	assert.Contains(t, src, "sync.OnceValue")
}

func TestEmitScalar_GeneralFallsBackToTaggedMap(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", ValueType: "string", Symbol: "Sparse", Static: true}
	entries := []Entry{
		{KeyLiteral: "1", ValueLiteral: `"a"`, KeyIndex: 1},
		{KeyLiteral: "1000", ValueLiteral: `"b"`, KeyIndex: 1000},
	}
	src, err := EmitScalar(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewIntMap[int, string]")
	assert.Contains(t, src, "frozen.Must")
	assert.Contains(t, src, "hash (pass-through)")
}

func TestEmitString_Map(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "string", ValueType: "int", Symbol: "Codes", Static: true}
	entries := []Entry{
		{KeyLiteral: `"red"`, ValueLiteral: "1"},
		{KeyLiteral: `"blue"`, ValueLiteral: "2"},
	}
	src, err := EmitString(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatScanMap[string, int]")
	assert.Contains(t, src, "Codes")
	assert.NotContains(t, src, "frozen.NewStringMap")
}

func TestEmitString_AboveScanThresholdUsesTaggedMap(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "string", ValueType: "int", Symbol: "Codes", Static: true}
	entries := []Entry{
		{KeyLiteral: `"red"`, ValueLiteral: "1"},
		{KeyLiteral: `"blue"`, ValueLiteral: "2"},
		{KeyLiteral: `"green"`, ValueLiteral: "3"},
		{KeyLiteral: `"yellow"`, ValueLiteral: "4"},
		{KeyLiteral: `"black"`, ValueLiteral: "5"},
	}
	src, err := EmitString(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewStringMap[int]")
}

func TestEmitHash_BelowScanThresholdUsesFlatScan(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "orders.ID", ValueType: "orders.Order", Symbol: "ByID", Static: true}
	entries := []Entry{
		{KeyLiteral: "orders.ID(1)", ValueLiteral: "orders.Order{}"},
	}
	src, err := EmitHash(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatScanMap[orders.ID, orders.Order]")
}

func TestEmitHash_AboveScanThresholdUsesTaggedMap(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "orders.ID", ValueType: "orders.Order", Symbol: "ByID", Static: true}
	entries := []Entry{
		{KeyLiteral: "orders.ID(1)", ValueLiteral: "orders.Order{}"},
		{KeyLiteral: "orders.ID(2)", ValueLiteral: "orders.Order{}"},
		{KeyLiteral: "orders.ID(3)", ValueLiteral: "orders.Order{}"},
		{KeyLiteral: "orders.ID(4)", ValueLiteral: "orders.Order{}"},
		{KeyLiteral: "orders.ID(5)", ValueLiteral: "orders.Order{}"},
	}
	src, err := EmitHash(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewHashMap[orders.ID, orders.Order]")
}

func TestEmitOrdered_Scan(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", Symbol: "Levels"}
	entries := []Entry{
		{KeyLiteral: "1"},
		{KeyLiteral: "2"},
		{KeyLiteral: "3"},
	}
	src, err := EmitOrdered(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatScanSet[int]")
}

func TestEmitOrdered_OrderedScan(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", Symbol: "Levels"}
	entries := []Entry{
		{KeyLiteral: "1"}, {KeyLiteral: "2"}, {KeyLiteral: "3"},
		{KeyLiteral: "4"}, {KeyLiteral: "5"},
	}
	src, err := EmitOrdered(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatOrderedScanSet[int]")
}

func TestEmitOrdered_BinarySearch(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", Symbol: "Levels"}
	entries := make([]Entry, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, Entry{KeyLiteral: itoa(i)})
	}
	src, err := EmitOrdered(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatBinarySearchSet[int]")
}

func TestEmitOrdered_Eytzinger(t *testing.T) {
	cfg := Config{Package: "gen", KeyType: "int", Symbol: "Levels"}
	entries := make([]Entry, 0, 100)
	for i := 0; i < 100; i++ {
		entries = append(entries, Entry{KeyLiteral: itoa(i)})
	}
	src, err := EmitOrdered(cfg, entries)
	require.NoError(t, err)
	assert.Contains(t, src, "frozen.NewFlatEytzingerSet[int]")
}

func TestConfig_Validate(t *testing.T) {
	_, err := EmitScalar(Config{Package: "gen", KeyType: "int", Mutable: true, Static: true}, nil)
	assert.ErrorIs(t, err, ErrMutableStatic)

	_, err = EmitScalar(Config{Package: "gen", KeyType: "int", Static: true}, nil)
	assert.ErrorIs(t, err, ErrStaticRequiresSymbol)

	_, err = EmitScalar(Config{Package: "gen", KeyType: "int", Alias: "X"}, nil)
	assert.ErrorIs(t, err, ErrAliasRequiresSymbol)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
