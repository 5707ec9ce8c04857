// Package codec implements the three packed-buffer layouts this library
// supports: packed-contiguous (tag 0), word-aligned (tag 1), and
// outlier-segregated (tag 2). Each exposes the same three operations —
// Compress, Decompress, Get — over the header format in package header.
package codec

import "github.com/arvidsson/bitpack/lib/header"

// Codec compresses a sequence of non-negative integers into a packed word
// array, decompresses one back into a caller-provided destination, and
// supports O(1) random access to a single element without materializing
// any other element.
type Codec interface {
	// Compress returns a freshly allocated packed word array for src.
	Compress(src []int64) ([]uint32, error)
	// Decompress writes len(packed-derived n) elements into dst[0:n].
	Decompress(packed []uint32, dst []uint32) error
	// Get returns element i of packed without decompressing the rest.
	Get(packed []uint32, i int) (uint32, error)
}

// New returns the Codec implementation for tag.
func New(tag header.Tag) (Codec, error) {
	switch tag {
	case header.TagContiguous:
		return Contiguous{}, nil
	case header.TagAligned:
		return Aligned{}, nil
	case header.TagOutlier:
		return Outlier{}, nil
	default:
		return nil, errFormat("unknown codec tag %d", tag)
	}
}

// FromBuffer reads packed's header tag and returns the matching Codec.
// Used when a caller holds a raw buffer without remembering which codec
// produced it.
func FromBuffer(packed []uint32) (Codec, error) {
	tag, err := header.Codec(packed)
	if err != nil {
		return nil, errFormat("%v", err)
	}
	return New(tag)
}
