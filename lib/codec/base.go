package codec

import (
	"math"
	"math/bits"

	"github.com/arvidsson/bitpack/lib/bitio"
	"github.com/arvidsson/bitpack/lib/header"
)

// maxValue is the largest value the format can represent: 2^31 - 1.
const maxValue = (1 << 31) - 1

// maxAllocWords bounds the total word count a single allocation may
// request. Go slices are indexed by int, so this is the largest total
// word count guaranteed representable on every supported platform
// without narrowing.
const maxAllocWords = math.MaxInt32

// minimumWidth returns 1 if max(seq) == 0, otherwise the minimum number
// of bits needed to represent max(seq). Negative values and values
// needing more than 31 bits fail before any further computation:
// negative values are rejected first, then oversized values.
func minimumWidth(seq []int64) (uint, error) {
	var max int64
	for _, v := range seq {
		if v < 0 {
			return 0, errInvalid("negative value %d at input", v)
		}
		if v > max {
			max = v
		}
	}
	if max > maxValue {
		return 0, errInvalid("value %d exceeds 31-bit ceiling (max %d)", max, maxValue)
	}
	if max == 0 {
		return 1, nil
	}
	return uint(bits.Len64(uint64(max))), nil
}

// allocate returns a zero-initialized word array sized to hold headerWords
// plus ceil(dataBits/32) data words. All arithmetic is performed in 64-bit
// precision before the final narrowing to int for make(), so a size that
// would overflow the native word-count domain fails with a capacity error
// instead of silently wrapping.
func allocate(headerWords uint64, dataBits uint64) ([]uint32, error) {
	totalWords := headerWords + bitio.WordsForBits(dataBits)
	if totalWords > maxAllocWords {
		return nil, errCapacity("word count %d exceeds maximum allocatable size %d", totalWords, uint64(maxAllocWords))
	}
	return make([]uint32, totalWords), nil
}

// validateDecodeArgs is the shared argument check for Decompress: dst must
// be non-nil and at least as long as the header's element count.
func validateDecodeArgs(packed []uint32, dst []uint32) (uint32, error) {
	if packed == nil {
		return 0, errInvalid("packed buffer is nil")
	}
	if dst == nil {
		return 0, errInvalid("destination slice is nil")
	}
	n, err := header.N(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	if uint32(len(dst)) < n {
		return 0, errInvalid("destination length %d shorter than element count %d", len(dst), n)
	}
	return n, nil
}

// validateIndex is the shared bounds check for Get: i must be in [0, n).
func validateIndex(packed []uint32, i int) (uint32, error) {
	if packed == nil {
		return 0, errInvalid("packed buffer is nil")
	}
	n, err := header.N(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	if i < 0 || uint32(i) >= n {
		return 0, errBounds("index %d out of range [0, %d)", i, n)
	}
	return n, nil
}
