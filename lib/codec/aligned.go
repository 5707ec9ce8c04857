package codec

import (
	"github.com/arvidsson/bitpack/lib/bitio"
	"github.com/arvidsson/bitpack/lib/header"
)

// Aligned is the word-aligned codec (tag 1): packs floor(32/k) fields per
// 32-bit word, padding any unused high bits of each word. No field ever
// straddles a word boundary, so every access goes through bitio's in-word
// fast path.
type Aligned struct{}

var _ Codec = Aligned{}

// elementsPerWord returns floor(32/k), never less than 1.
func elementsPerWord(k uint) uint {
	e := bitio.WordBits / k
	if e < 1 {
		e = 1
	}
	return e
}

// alignedPosition returns the absolute bit position of element i under the
// word-aligned layout for width k.
func alignedPosition(i uint64, k uint) uint64 {
	e := uint64(elementsPerWord(k))
	wordIdx := uint64(header.Words) + i/e
	bitOff := (i % e) * uint64(k)
	return wordIdx*bitio.WordBits + bitOff
}

// Compress packs src into floor(32/k) fields per word, k = minimumWidth(src).
func (Aligned) Compress(src []int64) ([]uint32, error) {
	if src == nil {
		return nil, errInvalid("source sequence is nil")
	}
	k, err := minimumWidth(src)
	if err != nil {
		return nil, err
	}
	n := uint64(len(src))
	e := uint64(elementsPerWord(k))
	dataWords := (n + e - 1) / e
	if n == 0 {
		dataWords = 0
	}
	packed, err := allocate(header.Words, dataWords*bitio.WordBits)
	if err != nil {
		return nil, err
	}
	header.Write(packed, uint32(n), header.TagAligned, uint32(k), uint32(k), 0)

	for i, v := range src {
		pos := alignedPosition(uint64(i), k)
		bitio.WriteInWord(packed, pos, k, uint32(v))
	}
	return packed, nil
}

// Decompress reads n fields, e per word, into dst[0:n].
func (Aligned) Decompress(packed []uint32, dst []uint32) error {
	n, err := validateDecodeArgs(packed, dst)
	if err != nil {
		return err
	}
	k, err := header.K(packed)
	if err != nil {
		return errFormat("%v", err)
	}
	for i := uint32(0); i < n; i++ {
		pos := alignedPosition(uint64(i), uint(k))
		dst[i] = bitio.ReadInWord(packed, pos, uint(k))
	}
	return nil
}

// Get returns element i with a single word read and mask-shift.
func (Aligned) Get(packed []uint32, i int) (uint32, error) {
	if _, err := validateIndex(packed, i); err != nil {
		return 0, err
	}
	k, err := header.K(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	pos := alignedPosition(uint64(i), uint(k))
	return bitio.ReadInWord(packed, pos, uint(k)), nil
}
