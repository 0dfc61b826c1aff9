// Package bench provides reproducible micro-benchmarks for the frozen
// collection facades. Run via:  go test ./bench -bench=. -benchmem -cpu 1,4,16
//
// Benchmarks are grouped by concern:
//   1. Construction — cost of New*Map for each facade at a fixed N
//   2. Get          — steady-state lookup throughput, hits and misses
//   3. GetParallel  — concurrent reads (safe: every facade is read-only
//      after construction, so no synchronization is needed)
//
// Results are printed in ns/op + alloc/op so CI can diff via benchstat.
//
// © 2025 frozen authors.
package bench

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Voskan/frozen"
)

const keys = 1 << 16 // 65536 keys for dataset

var denseKeys = func() []int {
	arr := make([]int, keys)
	for i := range arr {
		arr[i] = i
	}
	return arr
}()

var sparseKeys = func() []int {
	arr := make([]int, keys)
	for i := range arr {
		arr[i] = i * 1000
	}
	return arr
}()

var stringKeys = func() []string {
	arr := make([]string, keys)
	for i := range arr {
		arr[i] = fmt.Sprintf("key-%08d", i)
	}
	return arr
}()

func intEntries(ks []int) []frozen.Entry[int, int] {
	out := make([]frozen.Entry[int, int], len(ks))
	for i, k := range ks {
		out[i] = frozen.Entry[int, int]{Key: k, Value: i}
	}
	return out
}

func stringEntries(ks []string) []frozen.Entry[string, int] {
	out := make([]frozen.Entry[string, int], len(ks))
	for i, k := range ks {
		out[i] = frozen.Entry[string, int]{Key: k, Value: i}
	}
	return out
}

func BenchmarkConstruct_IntMapDense(b *testing.B) {
	entries := intEntries(denseKeys)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := frozen.NewIntMap(entries); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConstruct_IntMapSparse(b *testing.B) {
	entries := intEntries(sparseKeys)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := frozen.NewIntMap(entries); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConstruct_StringMap(b *testing.B) {
	entries := stringEntries(stringKeys)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := frozen.NewStringMap(entries); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGet_IntMapDense(b *testing.B) {
	m, err := frozen.NewIntMap(intEntries(denseKeys))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(denseKeys[i&(keys-1)])
	}
}

func BenchmarkGet_IntMapSparse(b *testing.B) {
	m, err := frozen.NewIntMap(intEntries(sparseKeys))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(sparseKeys[i&(keys-1)])
	}
}

func BenchmarkGet_StringMap(b *testing.B) {
	m, err := frozen.NewStringMap(stringEntries(stringKeys))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(stringKeys[i&(keys-1)])
	}
}

func BenchmarkGet_IntMapParallel(b *testing.B) {
	m, err := frozen.NewIntMap(intEntries(denseKeys))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		idx := rand.Intn(keys)
		for pb.Next() {
			idx = (idx + 1) & (keys - 1)
			_, _ = m.Get(denseKeys[idx])
		}
	})
}
