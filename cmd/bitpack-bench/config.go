package main

import "github.com/BurntSushi/toml"

// Config controls the benchmark harness: which codecs to exercise, at
// which input sizes, how many warmup and measured iterations to run, and
// the seed used to generate inputs. Modeled on lookbusy1344-arm_emulator's
// config.go: a plain struct with toml tags and a DefaultConfig constructor.
type Config struct {
	Codecs  []string `toml:"codecs"`
	Sizes   []int    `toml:"sizes"`
	Warmup  int      `toml:"warmup"`
	Measure int      `toml:"measure"`
	Seed    int64    `toml:"seed"`
	MaxVal  int64    `toml:"max_value"`
}

// DefaultConfig returns a configuration that covers every codec at a
// handful of representative sizes.
func DefaultConfig() *Config {
	return &Config{
		Codecs:  []string{"contiguous", "aligned", "outlier"},
		Sizes:   []int{1000, 10000, 100000},
		Warmup:  3,
		Measure: 7,
		Seed:    1,
		MaxVal:  1 << 16,
	}
}

// LoadConfig reads a TOML file into a Config, starting from DefaultConfig
// so an omitted field keeps its default rather than zeroing out.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
