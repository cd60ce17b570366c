package main

import (
	"encoding/binary"
	. "fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/zeebo/xxh3"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(1 << 20)

// meanBias is the mean deviation of each output bit from 50% over the tallied digests, in percent.
func meanBias(tally *[64]uint32, count uint32) float64 {
	var total float64
	for _, ones := range tally {
		d := float64(ones) - float64(count)/2
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total / 64 / (float64(count) / 2) * 100
}

func tallyBits(tally *[64]uint32, v uint64) {
	for v != 0 {
		tally[bits.TrailingZeros64(v)]++
		v &= v - 1
	}
}

// sumTest feeds the first ints big-endian integers to Sum64 and xxh3, as 4-byte messages, and
// reports monobit bias and collisions.
func sumTest() {
	var sumTally, xxTally [64]uint32
	seen := make(map[uint64]struct{}, ints)
	var collisions int
	iBytes := make([]byte, 4)

	for i := uint32(0); i < ints; i++ {
		binary.BigEndian.PutUint32(iBytes, i)
		h := crackme.Sum64(iBytes)
		if _, ok := seen[h]; ok {
			collisions++
		}
		seen[h] = struct{}{}
		tallyBits(&sumTally, h)
		tallyBits(&xxTally, xxh3.Hash(iBytes))
	}
	Printf("Sum64 monobit bias:   %6.3f%%   collisions: %d\n", meanBias(&sumTally, ints), collisions)
	Printf("xxh3 monobit bias:    %6.3f%%\n", meanBias(&xxTally, ints))
}
