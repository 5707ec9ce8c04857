// Command bitpack-smoke round-trips a handful of representative scenarios
// against all three codecs, reports every failing scenario/codec pair, and
// exits non-zero if any of them failed. It is a standalone sanity check, not a `go test` suite, so it can be run
// against a built binary's supporting library without the Go toolchain's
// test runner.
package main

import (
	"fmt"
	"os"

	"github.com/arvidsson/bitpack/lib/codec"
)

type scenario struct {
	name string
	seq  []int64
}

func scenarios() []scenario {
	mixed := make([]int64, 0, 1000)
	for i := 0; i < 999; i++ {
		mixed = append(mixed, 63)
	}
	mixed = append(mixed, 1048575)

	return []scenario{
		{"ascending-0-7", []int64{0, 1, 2, 3, 4, 5, 6, 7}},
		{"all-255", []int64{255, 255, 255, 255}},
		{"single-max-value", []int64{2147483647}},
		{"dominant-outlier", mixed},
		{"empty", []int64{}},
		{"all-zero", []int64{0, 0, 0, 0, 0}},
	}
}

func codecs() map[string]codec.Codec {
	return map[string]codec.Codec{
		"contiguous": codec.Contiguous{},
		"aligned":    codec.Aligned{},
		"outlier":    codec.Outlier{},
	}
}

func check(name string, c codec.Codec, src []int64) error {
	packed, err := c.Compress(src)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	dst := make([]uint32, len(src))
	if err := c.Decompress(packed, dst); err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	for i, v := range src {
		if dst[i] != uint32(v) {
			return fmt.Errorf("decompress[%d] = %d, want %d", i, dst[i], v)
		}
		got, err := c.Get(packed, i)
		if err != nil {
			return fmt.Errorf("get(%d): %w", i, err)
		}
		if got != uint32(v) {
			return fmt.Errorf("get(%d) = %d, want %d", i, got, v)
		}
	}
	return nil
}

func main() {
	failures := 0
	for _, s := range scenarios() {
		for name, c := range codecs() {
			if err := check(name, c, s.seq); err != nil {
				fmt.Printf("FAIL %s/%s: %v\n", s.name, name, err)
				failures++
				continue
			}
			fmt.Printf("PASS %s/%s\n", s.name, name)
		}
	}
	if failures > 0 {
		fmt.Printf("%d failure(s)\n", failures)
		os.Exit(1)
	}
	fmt.Println("all scenarios passed")
}
