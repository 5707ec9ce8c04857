// Command bitpack-gen emits a sequence file of random non-negative
// integers, with a configurable outlier rate so generated inputs can
// exercise the outlier codec's overflow region deliberately.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/arvidsson/bitpack/lib/seqio"
)

func main() {
	var (
		out         = flag.String("out", "", "output sequence file (required)")
		count       = flag.Int("n", 1000, "number of values to generate")
		mainMax     = flag.Int64("max", 255, "maximum value for non-outlier entries")
		outlierRate = flag.Float64("outlier-rate", 0.0, "fraction of values drawn from [0, outlier-max] instead of [0, max]")
		outlierMax  = flag.Int64("outlier-max", 1<<30, "maximum value for outlier entries")
		seed        = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	if *out == "" {
		fmt.Println("Error: ", "-out is required")
		os.Exit(1)
	}
	if *count < 0 {
		fmt.Println("Error: ", "-n must be non-negative")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	seq := make([]uint32, *count)
	for i := range seq {
		if rng.Float64() < *outlierRate {
			seq[i] = uint32(rng.Int63n(*outlierMax + 1))
		} else {
			seq[i] = uint32(rng.Int63n(*mainMax + 1))
		}
	}

	if err := seqio.WriteSequence(*out, seq); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
