package main

import (
	"context"
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/c4t-but-s4d/crackme/revision"
	"github.com/c4t-but-s4d/crackme/solve"
	"github.com/dterei/gotsc"
	"runtime"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* This file is the benchmarking suite for the solver: how long one chunk, and one whole table, of
the shipped revision survives each search strategy. */

var target = crackme.Sum64([]byte("E2DA"))

func chunk(name string, strategy solve.Strategy, alphabet string) {
	opts := solve.Options{Alphabet: alphabet, Strategy: strategy}
	fn := func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := solve.Chunk(context.Background(), target, crackme.ChunkSize, opts); err != nil {
				b.Fatal(err)
			}
		}
	}
	overhead := gotsc.TSCOverhead()
	start := gotsc.BenchStart()
	r := testing.Benchmark(fn)
	cycles := gotsc.BenchEnd() - start - overhead

	fmt.Printf(name+"      %10s/chunk      %7.2f Gcycles      %dB/op\n",
		time.Duration(r.NsPerOp()), float64(cycles)/1e9, r.AllocedBytesPerOp())
}

func table(name string, strategy solve.Strategy, alphabet string) {
	t, err := revision.Default.Table()
	if err != nil {
		panic(err)
	}
	start := time.Now()
	flag, err := solve.Table(context.Background(), t, solve.Options{Alphabet: alphabet, Strategy: strategy})
	if err != nil {
		panic(err)
	}
	fmt.Printf(name+"      %10s/table      %s\n", time.Since(start).Truncate(time.Microsecond), flag)
}

func main() {
	fmt.Printf("Running benchmarks on %d CPUs!\n\n"+
		"Strategy:                Time:                Cycles:          Usage:\n", runtime.NumCPU())

	t := time.Now()
	chunk("peel-hex       ", solve.Peel, "0123456789ABCDEF")
	chunk("exhaustive-hex ", solve.Exhaustive, "0123456789ABCDEF")
	chunk("peel-ascii     ", solve.Peel, solve.Printable)
	chunk("exhaustive-ascii", solve.Exhaustive, solve.Printable)
	println()
	table("peel-ascii     ", solve.Peel, solve.Printable)
	table("exhaustive-hex ", solve.Exhaustive, "0123456789ABCDEF")

	fmt.Printf("\nFinished in %s on %s/%s.\n", time.Since(t), runtime.GOOS, runtime.GOARCH)
}
