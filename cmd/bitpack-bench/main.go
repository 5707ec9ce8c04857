// Command bitpack-bench times compress/decompress/get across the three
// codecs at a range of input sizes. It consumes only the public
// Compress/Decompress/Get operations, never the codecs' internals.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/arvidsson/bitpack/lib/codec"
	"github.com/arvidsson/bitpack/lib/header"
)

func codecByName(name string) (codec.Codec, error) {
	switch name {
	case "contiguous":
		return codec.Contiguous{}, nil
	case "aligned":
		return codec.Aligned{}, nil
	case "outlier":
		return codec.Outlier{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func generate(rng *rand.Rand, n int, maxVal int64) []int64 {
	seq := make([]int64, n)
	for i := range seq {
		seq[i] = rng.Int63n(maxVal + 1)
	}
	return seq
}

// median returns the middle element of a sorted copy of samples, the way
// a single run's outliers (a GC pause, a scheduler hiccup) are discarded
// without needing a full statistics library.
func median(samples []time.Duration) time.Duration {
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[len(sorted)/2]
}

type result struct {
	codec      string
	size       int
	words      int
	compress   time.Duration
	decompress time.Duration
	get        time.Duration
}

func runOne(cd codec.Codec, name string, seq []int64, warmup, measure int) (result, error) {
	for i := 0; i < warmup; i++ {
		packed, err := cd.Compress(seq)
		if err != nil {
			return result{}, err
		}
		dst := make([]uint32, len(seq))
		if err := cd.Decompress(packed, dst); err != nil {
			return result{}, err
		}
	}

	compressTimes := make([]time.Duration, measure)
	var packed []uint32
	for i := 0; i < measure; i++ {
		start := time.Now()
		p, err := cd.Compress(seq)
		compressTimes[i] = time.Since(start)
		if err != nil {
			return result{}, err
		}
		packed = p
	}

	dst := make([]uint32, len(seq))
	decompressTimes := make([]time.Duration, measure)
	for i := 0; i < measure; i++ {
		start := time.Now()
		err := cd.Decompress(packed, dst)
		decompressTimes[i] = time.Since(start)
		if err != nil {
			return result{}, err
		}
	}

	n, err := header.N(packed)
	if err != nil {
		return result{}, err
	}
	getTimes := make([]time.Duration, measure)
	for i := 0; i < measure; i++ {
		idx := int(n) / 2
		if n == 0 {
			idx = 0
		}
		start := time.Now()
		if _, err := cd.Get(packed, idx); err != nil && n > 0 {
			return result{}, err
		}
		getTimes[i] = time.Since(start)
	}

	return result{
		codec:      name,
		size:       len(seq),
		words:      len(packed),
		compress:   median(compressTimes),
		decompress: median(decompressTimes),
		get:        median(getTimes),
	}, nil
}

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file (defaults baked in if omitted)")
	flag.Parse()

	var cfg *Config
	var err error
	if *cfgPath == "" {
		cfg = DefaultConfig()
	} else {
		cfg, err = LoadConfig(*cfgPath)
		if err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "codec\tn\twords\tcompress\tdecompress\tget")

	for _, size := range cfg.Sizes {
		seq := generate(rng, size, cfg.MaxVal)
		for _, name := range cfg.Codecs {
			cd, err := codecByName(name)
			if err != nil {
				fmt.Println("Error: ", err)
				os.Exit(1)
			}
			r, err := runOne(cd, name, seq, cfg.Warmup, cfg.Measure)
			if err != nil {
				fmt.Println("Error: ", err)
				os.Exit(1)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n", r.codec, r.size, r.words, r.compress, r.decompress, r.get)
		}
	}
	w.Flush()
}
