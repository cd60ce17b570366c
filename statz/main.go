package main

import (
	. "fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/c4t-but-s4d/crackme/obfuscate"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sys/cpu"
	"runtime"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Statz puts the chunk hasher next to real hash functions. It is not meant to flatter it: the point
// is to show how cheap one guess is, and therefore how cheap a chunk-by-chunk search is.

func BenchmarkSum64(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		crackme.Sum64(bytes)
	}
}

func BenchmarkFlatSum64(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		obfuscate.FlatSum64(bytes)
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func features() string {
	var s string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"avx2", cpu.X86.HasAVX2},
		{"avx512", cpu.X86.HasAVX512F},
		{"popcnt", cpu.X86.HasPOPCNT},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sha2", cpu.ARM64.HasSHA2},
	} {
		if f.ok {
			s += " " + f.name
		}
	}
	if s == "" {
		return " none detected"
	}
	return s
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s, features:%s\n\n", runtime.NumCPU(),
		runtime.GOOS, runtime.GOARCH, features())
	t := time.Now()

	Println("Quality on 4-byte inputs")
	sumTest()
	Println()

	Println("                  4B       32B       64K")
	Println("crackme.Sum64")
	benchAlg(BenchmarkSum64)

	Println("obfuscate.FlatSum64")
	benchAlg(BenchmarkFlatSum64)

	Println("github.com/zeebo/xxh3")
	benchAlg(BenchmarkXXH3)

	Println("github.com/minio/sha256-simd")
	benchAlg(BenchmarkSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(BenchmarkBlake3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
