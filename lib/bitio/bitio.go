// Package bitio provides bit-level I/O over a word array of uint32.
//
// # Overview
//
// Every function here operates on an absolute bit position: bit 0 is the
// least significant bit of word 0, bit 32 is the least significant bit of
// word 1, and so on. A field of 1..32 bits can be written or read starting
// at any bit position; a field may straddle the boundary between two
// adjacent words, in which case the low bits of the field live in the
// upper bits of the lower word and the remaining bits live in the low
// bits of the next word.
//
// # Fast path vs general path
//
// ReadInWord/WriteInWord assume the caller has already established that
// the field does not cross a word boundary (e.g. the word-aligned codec
// computes its layout so this always holds). They touch exactly one word
// and never check for straddling. ReadCrossWord/WriteCrossWord make no
// such assumption and handle both cases.
//
// # Dependencies
//
// Standard library only (see DESIGN.md for why no third-party bit-packing
// library from the example pack fits this word size and addressing
// scheme).
//
// # Thread Safety
//
// Functions here take the word slice by reference and mutate it directly
// for writes; callers must not share a slice being written across
// goroutines without external synchronization.
package bitio

const (
	// WordBits is the number of bits in one element of the packed word array.
	WordBits = 32
)

// enableTrace is a compile-time-disabled debug switch, in the same style as
// lib/bitbuffer.Codec.Trace: a hook for reporting internal state during
// development that production builds never pay for.
const enableTrace = false

func trace(event, function, arguments string) {
	if !enableTrace {
		return
	}
	msg := "[" + event + " " + function + "]"
	if arguments != "" {
		msg += " --> " + arguments
	}
	println(msg)
}

// mask32 returns the bitLen-bit all-ones mask, 0 <= bitLen <= 32.
func mask32(bitLen uint) uint32 {
	if bitLen >= WordBits {
		return ^uint32(0)
	}
	if bitLen == 0 {
		return 0
	}
	return (uint32(1) << bitLen) - 1
}

// ReadCrossWord returns the unsigned integer formed by the bitLen bits
// starting at bitPos, LSB-first within each word. bitLen must be in
// 0..32; bitLen == 0 returns 0. The field may straddle the boundary
// between two adjacent words in words.
//
// The caller is responsible for ensuring the field lies within words;
// this function does not bounds-check.
func ReadCrossWord(words []uint32, bitPos uint64, bitLen uint) uint32 {
	trace("ENTER", "ReadCrossWord", "")
	defer trace("EXIT", "ReadCrossWord", "")

	if bitLen == 0 {
		return 0
	}

	wordIdx := bitPos / WordBits
	bitOff := uint(bitPos % WordBits)
	lowBits := WordBits - bitOff
	if lowBits > bitLen {
		lowBits = bitLen
	}

	low := (words[wordIdx] >> bitOff) & mask32(lowBits)
	if lowBits == bitLen {
		return low
	}

	highBits := bitLen - lowBits
	high := words[wordIdx+1] & mask32(highBits)
	return low | (high << lowBits)
}

// WriteCrossWord writes the low bitLen bits of value at bitPos, LSB-first
// within each word. bitLen must be in 0..32; bitLen == 0 is a no-op. The
// field may straddle a word boundary. Bits outside the target field are
// preserved; the caller-provided value is masked to bitLen bits before
// being written, so callers do not need to pre-mask.
//
// The caller is responsible for ensuring the field lies within words;
// this function does not bounds-check.
func WriteCrossWord(words []uint32, bitPos uint64, bitLen uint, value uint32) {
	trace("ENTER", "WriteCrossWord", "")
	defer trace("EXIT", "WriteCrossWord", "")

	if bitLen == 0 {
		return
	}
	value &= mask32(bitLen)

	wordIdx := bitPos / WordBits
	bitOff := uint(bitPos % WordBits)
	lowBits := WordBits - bitOff
	if lowBits > bitLen {
		lowBits = bitLen
	}

	lowMask := mask32(lowBits) << bitOff
	words[wordIdx] = (words[wordIdx] &^ lowMask) | ((value << bitOff) & lowMask)

	if lowBits == bitLen {
		return
	}

	highBits := bitLen - lowBits
	highMask := mask32(highBits)
	words[wordIdx+1] = (words[wordIdx+1] &^ highMask) | ((value >> lowBits) & highMask)
}

// ReadInWord is the fast path of ReadCrossWord: it assumes bitOffsetInWord
// (bitPos mod 32) plus bitLen does not exceed 32, i.e. the field lives
// entirely inside one word. It touches exactly one word and never
// branches on straddling.
func ReadInWord(words []uint32, bitPos uint64, bitLen uint) uint32 {
	if bitLen == 0 {
		return 0
	}
	wordIdx := bitPos / WordBits
	bitOff := uint(bitPos % WordBits)
	return (words[wordIdx] >> bitOff) & mask32(bitLen)
}

// WriteInWord is the fast path of WriteCrossWord: it assumes bitOffsetInWord
// (bitPos mod 32) plus bitLen does not exceed 32. It touches exactly one
// word and never branches on straddling.
func WriteInWord(words []uint32, bitPos uint64, bitLen uint, value uint32) {
	if bitLen == 0 {
		return
	}
	value &= mask32(bitLen)
	wordIdx := bitPos / WordBits
	bitOff := uint(bitPos % WordBits)
	m := mask32(bitLen) << bitOff
	words[wordIdx] = (words[wordIdx] &^ m) | ((value << bitOff) & m)
}

// WordsForBits returns the number of uint32 words needed to hold bitCount
// bits, computed in 64-bit arithmetic to avoid overflow for large inputs.
func WordsForBits(bitCount uint64) uint64 {
	return (bitCount + WordBits - 1) / WordBits
}
