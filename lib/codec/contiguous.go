package codec

import (
	"github.com/arvidsson/bitpack/lib/bitio"
	"github.com/arvidsson/bitpack/lib/header"
)

// Contiguous is the packed-contiguous codec (tag 0): n fields of width k
// stored back-to-back, with no padding. A field may straddle a word
// boundary, so every access goes through the cross-word bit I/O path.
type Contiguous struct{}

var _ Codec = Contiguous{}

// Compress packs src into n k-bit fields where k = minimumWidth(src).
func (Contiguous) Compress(src []int64) ([]uint32, error) {
	if src == nil {
		return nil, errInvalid("source sequence is nil")
	}
	k, err := minimumWidth(src)
	if err != nil {
		return nil, err
	}
	n := uint64(len(src))
	packed, err := allocate(header.Words, n*uint64(k))
	if err != nil {
		return nil, err
	}
	header.Write(packed, uint32(n), header.TagContiguous, uint32(k), uint32(k), 0)

	base := uint64(header.Words) * 32
	for i, v := range src {
		pos := base + uint64(i)*uint64(k)
		bitio.WriteCrossWord(packed, pos, k, uint32(v))
	}
	return packed, nil
}

// Decompress reads n k-bit fields into dst[0:n].
func (Contiguous) Decompress(packed []uint32, dst []uint32) error {
	n, err := validateDecodeArgs(packed, dst)
	if err != nil {
		return err
	}
	k, err := header.K(packed)
	if err != nil {
		return errFormat("%v", err)
	}
	base := uint64(header.Words) * 32
	for i := uint32(0); i < n; i++ {
		pos := base + uint64(i)*uint64(k)
		dst[i] = bitio.ReadCrossWord(packed, pos, uint(k))
	}
	return nil
}

// Get returns element i without decoding any other element.
func (Contiguous) Get(packed []uint32, i int) (uint32, error) {
	if _, err := validateIndex(packed, i); err != nil {
		return 0, err
	}
	k, err := header.K(packed)
	if err != nil {
		return 0, errFormat("%v", err)
	}
	pos := uint64(header.Words)*32 + uint64(i)*uint64(k)
	return bitio.ReadCrossWord(packed, pos, uint(k)), nil
}
