// Command bitpack is the interactive driver for the bitpack library. It
// consumes only the public Compress/Decompress/Get operations and the
// header getters, the way any caller outside the core library would.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/arvidsson/bitpack/lib/codec"
	"github.com/arvidsson/bitpack/lib/header"
	"github.com/arvidsson/bitpack/lib/persist"
	"github.com/arvidsson/bitpack/lib/seqio"
)

func codecByName(name string) (codec.Codec, header.Tag, error) {
	switch name {
	case "contiguous":
		return codec.Contiguous{}, header.TagContiguous, nil
	case "aligned":
		return codec.Aligned{}, header.TagAligned, nil
	case "outlier":
		return codec.Outlier{}, header.TagOutlier, nil
	default:
		return nil, 0, fmt.Errorf("unknown codec %q (want contiguous, aligned, or outlier)", name)
	}
}

func compressCmd(c *cli.Context) error {
	in, out, name := c.Args().Get(0), c.Args().Get(1), c.String("codec")
	if in == "" || out == "" {
		return cli.Exit("usage: bitpack compress --codec=... <in-seq-file> <out-packed-file>", 1)
	}
	cd, _, err := codecByName(name)
	if err != nil {
		return cli.Exit(err, 1)
	}
	src, err := seqio.ReadSequence(in)
	if err != nil {
		return cli.Exit(err, 1)
	}
	packed, err := cd.Compress(src)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := persist.Save(out, packed); err != nil {
		return cli.Exit(err, 1)
	}
	slog.Info("compressed", "codec", name, "elements", len(src), "words", len(packed))
	return nil
}

func decompressCmd(c *cli.Context) error {
	in, out := c.Args().Get(0), c.Args().Get(1)
	if in == "" || out == "" {
		return cli.Exit("usage: bitpack decompress <in-packed-file> <out-seq-file>", 1)
	}
	packed, err := persist.Load(in)
	if err != nil {
		return cli.Exit(err, 1)
	}
	cd, err := codec.FromBuffer(packed)
	if err != nil {
		return cli.Exit(err, 1)
	}
	n, err := header.N(packed)
	if err != nil {
		return cli.Exit(err, 1)
	}
	dst := make([]uint32, n)
	if err := cd.Decompress(packed, dst); err != nil {
		return cli.Exit(err, 1)
	}
	if err := seqio.WriteSequence(out, dst); err != nil {
		return cli.Exit(err, 1)
	}
	slog.Info("decompressed", "elements", n)
	return nil
}

func getCmd(c *cli.Context) error {
	in := c.Args().Get(0)
	idx := c.Args().Get(1)
	if in == "" || idx == "" {
		return cli.Exit("usage: bitpack get <packed-file> <index>", 1)
	}
	var i int
	if _, err := fmt.Sscanf(idx, "%d", &i); err != nil {
		return cli.Exit(fmt.Errorf("invalid index %q: %w", idx, err), 1)
	}
	packed, err := persist.Load(in)
	if err != nil {
		return cli.Exit(err, 1)
	}
	cd, err := codec.FromBuffer(packed)
	if err != nil {
		return cli.Exit(err, 1)
	}
	v, err := cd.Get(packed, i)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Println(v)
	return nil
}

func main() {
	app := &cli.App{
		Name:  "bitpack",
		Usage: "compress, decompress, and randomly access packed integer sequences",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "compress a sequence file into a packed buffer",
				ArgsUsage: "<in-seq-file> <out-packed-file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "codec", Value: "contiguous", Usage: "contiguous, aligned, or outlier"},
				},
				Action: compressCmd,
			},
			{
				Name:      "decompress",
				Usage:     "decompress a packed buffer into a sequence file",
				ArgsUsage: "<in-packed-file> <out-seq-file>",
				Action:    decompressCmd,
			},
			{
				Name:      "get",
				Usage:     "read a single element from a packed buffer by index",
				ArgsUsage: "<packed-file> <index>",
				Action:    getCmd,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("bitpack failed", "err", err)
		os.Exit(1)
	}
}
