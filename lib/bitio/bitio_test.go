package bitio

import "testing"

func TestWriteReadInWordRoundTrip(t *testing.T) {
	words := make([]uint32, 2)

	WriteInWord(words, 0, 5, 0x1F)
	if got := ReadInWord(words, 0, 5); got != 0x1F {
		t.Errorf("ReadInWord(0,5) = %#x, want %#x", got, 0x1F)
	}

	WriteInWord(words, 5, 3, 0x6)
	if got := ReadInWord(words, 5, 3); got != 0x6 {
		t.Errorf("ReadInWord(5,3) = %#x, want %#x", got, 0x6)
	}
	// first field must be untouched
	if got := ReadInWord(words, 0, 5); got != 0x1F {
		t.Errorf("ReadInWord(0,5) after second write = %#x, want %#x", got, 0x1F)
	}
}

func TestWriteReadCrossWordStraddle(t *testing.T) {
	words := make([]uint32, 2)

	// field of 10 bits starting at bit 28: 4 bits in word 0, 6 bits in word 1
	const value = 0x3AA // 10 bits: 11 1010 1010
	WriteCrossWord(words, 28, 10, value)
	if got := ReadCrossWord(words, 28, 10); got != value {
		t.Errorf("ReadCrossWord(28,10) = %#x, want %#x", got, value)
	}

	// confirm the straddle actually touched both words
	if words[0]>>28 == 0 || words[1]&0x3F == 0 {
		t.Errorf("expected straddling write to touch both words, word0=%#x word1=%#x", words[0], words[1])
	}
}

func TestWriteCrossWordPreservesNeighboringFields(t *testing.T) {
	words := make([]uint32, 1)
	WriteCrossWord(words, 0, 4, 0xF)
	WriteCrossWord(words, 4, 4, 0x3)
	if got := ReadCrossWord(words, 0, 4); got != 0xF {
		t.Errorf("field 0 clobbered: got %#x, want %#x", got, 0xF)
	}
	if got := ReadCrossWord(words, 4, 4); got != 0x3 {
		t.Errorf("field 1 wrong: got %#x, want %#x", got, 0x3)
	}
}

func TestWidth32IsAllOnesMask(t *testing.T) {
	words := make([]uint32, 1)
	WriteCrossWord(words, 0, 32, 0xFFFFFFFF)
	if words[0] != 0xFFFFFFFF {
		t.Errorf("word = %#x, want all-ones", words[0])
	}
	if got := ReadCrossWord(words, 0, 32); got != 0xFFFFFFFF {
		t.Errorf("ReadCrossWord(0,32) = %#x, want all-ones", got)
	}
}

func TestWidthZeroIsNoOp(t *testing.T) {
	words := []uint32{0xDEADBEEF}
	WriteCrossWord(words, 0, 0, 0x1)
	if words[0] != 0xDEADBEEF {
		t.Errorf("width-0 write mutated word: got %#x", words[0])
	}
	if got := ReadCrossWord(words, 0, 0); got != 0 {
		t.Errorf("ReadCrossWord width 0 = %#x, want 0", got)
	}
}

func TestWordsForBits(t *testing.T) {
	cases := []struct {
		bits uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{32, 1},
		{33, 2},
		{64, 2},
		{65, 3},
	}
	for _, c := range cases {
		if got := WordsForBits(c.bits); got != c.want {
			t.Errorf("WordsForBits(%d) = %d, want %d", c.bits, got, c.want)
		}
	}
}

func TestPackedFieldsAgainstKnownLayout(t *testing.T) {
	// three 3-bit fields packed contiguously starting at bit 0: 5, 3, 7
	words := make([]uint32, 1)
	WriteCrossWord(words, 0, 3, 5)
	WriteCrossWord(words, 3, 3, 3)
	WriteCrossWord(words, 6, 3, 7)

	want := uint32(5) | uint32(3)<<3 | uint32(7)<<6
	if words[0] != want {
		t.Errorf("word = %#b, want %#b", words[0], want)
	}
}
