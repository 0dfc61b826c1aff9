package frozen

// thresholds.go collects the N-dependent dispatch cutoffs each facade
// constructor uses to choose its layout. Exact values are a measurement
// question rather than a correctness one: a small facade should pick scan,
// and a collection large enough to benefit from cache-oblivious layout
// should pick Eytzinger, but precisely where those lines fall can be
// retuned without changing any facade's observable behavior.
//
// © 2025 frozen authors.

const (
	// scanThreshold is the N below which the hash, string and ordered
	// facades prefer a plain linear scan over any other variant.
	scanThreshold = 4

	// orderedScanThreshold is the N below which the ordered facade prefers
	// a short-circuiting linear scan over binary/Eytzinger search.
	orderedScanThreshold = 6

	// eytzingerThreshold is the smallest N for which the ordered facade
	// prefers the cache-oblivious Eytzinger layout over plain binary
	// search; below it, binary search's simpler layout wins on
	// construction cost with no measurable lookup penalty.
	eytzingerThreshold = 64
)
