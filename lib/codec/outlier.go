package codec

import (
	"math/bits"

	"github.com/arvidsson/bitpack/lib/bitio"
	"github.com/arvidsson/bitpack/lib/header"
)

// Outlier is the outlier-segregated codec (tag 2): a two-region layout
// that isolates large values in a trailing overflow region addressed by
// index, with an adaptively chosen main-field width k that minimizes
// total packed size.
type Outlier struct{}

var _ Codec = Outlier{}

// widthOfValue returns the number of bits needed to represent v as an
// unsigned value: 1 for v == 0, bits.Len64(v) otherwise. Unlike
// minimumWidth, this operates on a single scalar rather than a sequence.
func widthOfValue(v uint64) uint {
	if v == 0 {
		return 1
	}
	return uint(bits.Len64(v))
}

// outlierPlan is the result of the adaptive width selection in selectWidth.
type outlierPlan struct {
	k         uint
	bpe       uint
	bpo       uint
	nOverflow uint64
}

// selectWidth scans candidate inline widths k from 1 to maxBits (the width
// of the whole sequence's maximum value), and picks the one minimizing
// n*bitsPerElement + nOverflow(k)*maxBits, breaking ties toward the
// smaller k via ascending-order first-win.
func selectWidth(src []int64, maxBits uint) outlierPlan {
	n := uint64(len(src))
	var best outlierPlan
	bestCost := ^uint64(0)
	haveBest := false

	for k := uint(1); k <= maxBits; k++ {
		limit := (int64(1) << k) - 1
		var nOverflow uint64
		for _, v := range src {
			if v > limit {
				nOverflow++
			}
		}
		var indexBits uint
		if nOverflow > 0 {
			indexBits = widthOfValue(nOverflow)
		}
		bpe := 1 + max(k, indexBits)

		mainBits, ok1 := mulOverflowsUint64(n, uint64(bpe))
		overflowBits, ok2 := mulOverflowsUint64(nOverflow, uint64(maxBits))
		if !ok1 || !ok2 {
			continue // candidate's cost exceeds the native range; skip it
		}
		cost := mainBits + overflowBits

		if !haveBest || cost < bestCost {
			haveBest = true
			bestCost = cost
			best = outlierPlan{k: k, bpe: bpe, bpo: maxBits, nOverflow: nOverflow}
		}
	}
	return best
}

// mulOverflowsUint64 returns a*b and whether the multiplication did not
// overflow uint64.
func mulOverflowsUint64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	result := a * b
	return result, result/b == a
}

// Compress selects (k, bpe, bpo) per selectWidth, then writes every value
// either inline (flag bit 0) or as an overflow index (flag bit 1) into the
// main region, appending full-width values to the overflow region in the
// order outliers are encountered.
func (Outlier) Compress(src []int64) ([]uint32, error) {
	if src == nil {
		return nil, errInvalid("source sequence is nil")
	}
	maxBits, err := minimumWidth(src)
	if err != nil {
		return nil, err
	}
	plan := selectWidth(src, maxBits)
	n := uint64(len(src))

	mainBits, ok1 := mulOverflowsUint64(n, uint64(plan.bpe))
	overflowBits, ok2 := mulOverflowsUint64(plan.nOverflow, uint64(plan.bpo))
	if !ok1 || !ok2 {
		return nil, errCapacity("selected plan's total bit count overflows the native range")
	}
	packed, err := allocate(header.Words, mainBits+overflowBits)
	if err != nil {
		return nil, err
	}
	header.Write(packed, uint32(n), header.TagOutlier, uint32(plan.k), uint32(plan.bpe), uint32(plan.bpo))

	base := uint64(header.Words) * 32
	overflowBase := base + n*uint64(plan.bpe)
	limit := (int64(1) << plan.k) - 1
	flagBit := uint32(1) << (plan.bpe - 1)

	var overflowIndex uint64
	for i, v := range src {
		mainPos := base + uint64(i)*uint64(plan.bpe)
		if v <= limit {
			bitio.WriteCrossWord(packed, mainPos, plan.bpe, uint32(v))
			continue
		}
		overflowPos := overflowBase + overflowIndex*uint64(plan.bpo)
		bitio.WriteCrossWord(packed, overflowPos, plan.bpo, uint32(v))
		bitio.WriteCrossWord(packed, mainPos, plan.bpe, flagBit|uint32(overflowIndex))
		overflowIndex++
	}
	return packed, nil
}

// readEntry resolves element i of packed: reads the bpe-wide main entry
// and, if its flag bit is set, follows the overflow index into the
// overflow region.
func readEntry(packed []uint32, n uint32, bpe uint32, bpo uint32, i uint64) uint32 {
	base := uint64(header.Words) * 32
	mainPos := base + i*uint64(bpe)
	entry := bitio.ReadCrossWord(packed, mainPos, uint(bpe))

	flagBit := uint32(1) << (bpe - 1)
	if entry&flagBit == 0 {
		return entry & (flagBit - 1)
	}
	index := entry &^ flagBit
	overflowBase := base + uint64(n)*uint64(bpe)
	overflowPos := overflowBase + uint64(index)*uint64(bpo)
	return bitio.ReadCrossWord(packed, overflowPos, uint(bpo))
}

// Decompress resolves every main entry, following overflow indices where
// the flag bit is set.
func (Outlier) Decompress(packed []uint32, dst []uint32) error {
	n, err := validateDecodeArgs(packed, dst)
	if err != nil {
		return err
	}
	bpe, err := header.BitsPerElement(packed)
	if err != nil {
		return errFormat("%v", err)
	}
	bpo, err := header.BitsPerOverflow(packed)
	if err != nil {
		return errFormat("%v", err)
	}
	for i := uint32(0); i < n; i++ {
		dst[i] = readEntry(packed, n, bpe, bpo, uint64(i))
	}
	return nil
}

// Get resolves element i without decoding any other element: one main
// entry read, plus one overflow read if the flag bit is set.
func (Outlier) Get(packed []uint32, i int) (uint32, error) {
	n, err := validateIndex(packed, i)
	if err != nil {
		return 0, err
	}
	bpe, err := header.BitsPerElement(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	bpo, err := header.BitsPerOverflow(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	return readEntry(packed, n, bpe, bpo, uint64(i)), nil
}
