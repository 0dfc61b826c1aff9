package analyze

// SliceResult is the verdict of analyzing a set of byte-sliceable keys
// (strings, in this implementation) for a cheaper-than-whole-key hashing
// strategy.
type SliceResult struct {
	Kind SliceKind
	// Index/Len describe the winning sub-slice for LeftSub/RightSub: the
	// hashed range is [Index, Index+Len) from the front (LeftSub) or
	// measured from the back (RightSub).
	Index int
	Len   int
}

type SliceKind int

const (
	SliceGeneral SliceKind = iota
	SliceLength
	SliceLeftSub
	SliceRightSub
)

const (
	maxLengthAnalysisKeys  = 255
	maxIdenticalLengths    = 3
	maxSubSliceLength      = 16
	acceptableDuplicateFrc = 0.05
)

// Hasher64 computes a 64-bit hash for an arbitrary byte slice; the analyzer
// only needs this to measure sub-slice uniqueness; it is not a long-lived
// hasher in its own right.
type Hasher64 func(b []byte) uint64

// Slice runs the two-sub-pass length/sub-slice analysis against keys
// (assumed already deduplicated) using bh to hash candidate sub-slices.
func Slice(keys []string, bh Hasher64) SliceResult {
	if r, ok := analyzeLengths(keys); ok {
		return r
	}
	return analyzeSubSlices(keys, bh)
}

func analyzeLengths(keys []string) (SliceResult, bool) {
	if len(keys) > maxLengthAnalysisKeys {
		return SliceResult{}, false
	}

	counts := make(map[int]int, len(keys))
	for _, k := range keys {
		counts[len(k)]++
		if counts[len(k)] > maxIdenticalLengths {
			return SliceResult{}, false
		}
	}
	return SliceResult{Kind: SliceLength}, true
}

func analyzeSubSlices(keys []string, bh Hasher64) SliceResult {
	if len(keys) == 0 {
		return SliceResult{Kind: SliceGeneral}
	}

	minLen, maxLen := len(keys[0]), len(keys[0])
	for _, k := range keys[1:] {
		if len(k) < minLen {
			minLen = len(k)
		}
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	acceptableDuplicates := int(float64(len(keys)) * acceptableDuplicateFrc)
	maxSubLen := minLen
	if maxSubLen > maxSubSliceLength {
		maxSubLen = maxSubSliceLength
	}

	seen := make(map[uint64]struct{}, len(keys))

	for subLen := 1; subLen <= maxSubLen; subLen++ {
		for idx := 0; idx <= minLen-subLen; idx++ {
			if isSufficientlyUnique(keys, idx, subLen, true, seen, acceptableDuplicates, bh) {
				if subLen == maxLen {
					// Hashing the whole key is no cheaper than hashing
					// this "sub"-slice once it covers every byte.
					return SliceResult{Kind: SliceGeneral}
				}
				return SliceResult{Kind: SliceLeftSub, Index: idx, Len: subLen}
			}
		}

		if minLen != maxLen {
			for idx := 0; idx <= minLen-subLen; idx++ {
				if isSufficientlyUnique(keys, idx, subLen, false, seen, acceptableDuplicates, bh) {
					return SliceResult{Kind: SliceRightSub, Index: idx, Len: subLen}
				}
			}
		}
	}

	return SliceResult{Kind: SliceGeneral}
}

func isSufficientlyUnique(
	keys []string,
	idx, subLen int,
	leftJustified bool,
	seen map[uint64]struct{},
	acceptableDuplicates int,
	bh Hasher64,
) bool {
	for k := range seen {
		delete(seen, k)
	}

	remaining := acceptableDuplicates
	for _, s := range keys {
		var sub string
		if leftJustified {
			sub = s[idx : idx+subLen]
		} else {
			start := len(s) - idx - subLen
			sub = s[start : start+subLen]
		}

		h := bh([]byte(sub))
		if _, dup := seen[h]; dup {
			if remaining == 0 {
				return false
			}
			remaining--
			continue
		}
		seen[h] = struct{}{}
	}
	return true
}
