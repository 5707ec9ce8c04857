package codec

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsson/bitpack/lib/header"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"contiguous": Contiguous{},
		"aligned":    Aligned{},
		"outlier":    Outlier{},
	}
}

func roundTrip(t *testing.T, name string, c Codec, src []int64) []uint32 {
	t.Helper()
	packed, err := c.Compress(src)
	require.NoError(t, err, "%s: compress", name)

	dst := make([]uint32, len(src))
	require.NoError(t, c.Decompress(packed, dst), "%s: decompress", name)

	for i, v := range src {
		assert.Equal(t, uint32(v), dst[i], "%s: decompress[%d]", name, i)
		got, err := c.Get(packed, i)
		require.NoError(t, err, "%s: get(%d)", name, i)
		assert.Equal(t, uint32(v), got, "%s: get[%d]", name, i)
	}
	return packed
}

func TestRoundTripAllCodecs(t *testing.T) {
	scenarios := map[string][]int64{
		"ascending":      {0, 1, 2, 3, 4, 5, 6, 7},
		"all-zero":       {0, 0, 0, 0, 0},
		"empty":          {},
		"single-large":   {2147483647},
		"all-255":        {255, 255, 255, 255},
		"mixed-outliers": append(make([]int64, 0, 1000), repeat(63, 999)...),
	}
	scenarios["mixed-outliers"] = append(scenarios["mixed-outliers"], 1048575)

	for name, c := range allCodecs() {
		for sname, src := range scenarios {
			t.Run(name+"/"+sname, func(t *testing.T) {
				roundTrip(t, name, c, src)
			})
		}
	}
}

func repeat(v int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int64, 1000)
	for i := range src {
		src[i] = int64(rng.Intn(256))
	}
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, name, c, src)
		})
	}
}

func TestWidthMinimalityContiguousAndAligned(t *testing.T) {
	src := []int64{0, 1, 2, 3, 4, 5, 6, 7}
	for name, c := range map[string]Codec{"contiguous": Contiguous{}, "aligned": Aligned{}} {
		t.Run(name, func(t *testing.T) {
			packed, err := c.Compress(src)
			require.NoError(t, err)
			k, err := header.K(packed)
			require.NoError(t, err)
			assert.EqualValues(t, 3, k)
		})
	}
}

func TestHeaderFaithfulness(t *testing.T) {
	src := []int64{10, 20, 30, 40, 50}
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := c.Compress(src)
			require.NoError(t, err)
			n, err := header.N(packed)
			require.NoError(t, err)
			assert.EqualValues(t, len(src), n)
		})
	}
}

func TestContiguousSizeBound(t *testing.T) {
	src := []int64{0, 1, 2, 3, 4, 5, 6, 7}
	packed, err := Contiguous{}.Compress(src)
	require.NoError(t, err)
	// k=3, 8 elements -> 24 bits -> 1 data word
	assert.Len(t, packed, header.Words+1)
}

func TestAlignedSizeBound(t *testing.T) {
	src := []int64{255, 255, 255, 255}
	packed, err := Aligned{}.Compress(src)
	require.NoError(t, err)
	// k=8, e=4, 4 elements -> 1 data word
	assert.Len(t, packed, header.Words+1)
	k, err := header.K(packed)
	require.NoError(t, err)
	assert.EqualValues(t, 8, k)
}

func TestAlignedNoCrossInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	src := make([]int64, 500)
	for i := range src {
		src[i] = int64(rng.Intn(1 << 13))
	}
	packed, err := Aligned{}.Compress(src)
	require.NoError(t, err)
	k, err := header.K(packed)
	require.NoError(t, err)
	e := uint64(32 / k)
	if e == 0 {
		e = 1
	}
	for i := range src {
		bitOff := (uint64(i) % e) * uint64(k)
		require.LessOrEqualf(t, bitOff+uint64(k), uint64(32), "element %d straddles a word", i)
	}
}

func TestOutlierSelectorPutsDominantOutlierInOverflow(t *testing.T) {
	src := repeat(63, 999)
	src = append(src, 1048575)
	packed, err := Outlier{}.Compress(src)
	require.NoError(t, err)

	k, err := header.K(packed)
	require.NoError(t, err)
	assert.LessOrEqual(t, k, uint32(6))

	bpo, err := header.BitsPerOverflow(packed)
	require.NoError(t, err)
	assert.EqualValues(t, 20, bpo)

	got, err := Outlier{}.Get(packed, 999)
	require.NoError(t, err)
	assert.EqualValues(t, 1048575, got)
}

func TestFormatRejectionBadMagic(t *testing.T) {
	packed, err := Contiguous{}.Compress([]int64{1, 2, 3})
	require.NoError(t, err)
	packed[0] ^= 0xFFFFFFFF

	dst := make([]uint32, 3)
	assert.False(t, header.MagicOK(packed))
	assert.Error(t, Contiguous{}.Decompress(packed, dst))

	_, err = Contiguous{}.Get(packed, 0)
	assert.Error(t, err)

	_, err = header.N(packed)
	assert.ErrorIs(t, err, header.ErrBadMagic)
}

func TestGetOutOfBounds(t *testing.T) {
	packed, err := Contiguous{}.Compress([]int64{1, 2, 3})
	require.NoError(t, err)
	_, err = Contiguous{}.Get(packed, 3)
	assert.Error(t, err)
	_, err = Contiguous{}.Get(packed, -1)
	assert.Error(t, err)
}

func TestCompressRejectsNegativeAndOversizedValues(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name+"/negative", func(t *testing.T) {
			_, err := c.Compress([]int64{1, -2, 3})
			assert.Error(t, err)
		})
		t.Run(name+"/oversized", func(t *testing.T) {
			_, err := c.Compress([]int64{1 << 31})
			assert.Error(t, err)
		})
	}
}

func TestDecompressRejectsShortDestination(t *testing.T) {
	packed, err := Contiguous{}.Compress([]int64{1, 2, 3})
	require.NoError(t, err)
	err = Contiguous{}.Decompress(packed, make([]uint32, 2))
	assert.Error(t, err)
}

func TestEmptyInputIsHeaderOnly(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := c.Compress([]int64{})
			require.NoError(t, err)
			n, err := header.N(packed)
			require.NoError(t, err)
			assert.EqualValues(t, 0, n)

			dst := make([]uint32, 0)
			assert.NoError(t, c.Decompress(packed, dst))

			_, err = c.Get(packed, 0)
			assert.Error(t, err)
		})
	}
}

func TestValueNear2pow31Minus1(t *testing.T) {
	v := int64(1<<31 - 1)
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := c.Compress([]int64{v})
			require.NoError(t, err)
			got, err := c.Get(packed, 0)
			require.NoError(t, err)
			assert.EqualValues(t, v, got)
		})
	}
}

func TestDispatchFromBuffer(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := c.Compress([]int64{1, 2, 3})
			require.NoError(t, err)
			dispatched, err := FromBuffer(packed)
			require.NoError(t, err)
			got, err := dispatched.Get(packed, 1)
			require.NoError(t, err)
			assert.EqualValues(t, 2, got)
		})
	}
}

func TestMinimumWidthFormula(t *testing.T) {
	src := []int64{0, 1, 2, 3, 4, 5, 6, 7}
	k, err := minimumWidth(src)
	require.NoError(t, err)
	assert.EqualValues(t, bits.Len64(7), k)

	allZero := []int64{0, 0, 0}
	k, err = minimumWidth(allZero)
	require.NoError(t, err)
	assert.EqualValues(t, 1, k)
}
