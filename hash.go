package crackme

import (
	"encoding/binary"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the chunk hasher: a rolling XOR-multiply fold over the bytes of one chunk. It is
// not a cryptographic hash; its only job is to make each 4-byte chunk recoverable by search alone.

// Multiplier is the odd constant every folded byte is multiplied by.
const Multiplier = 31337

// Sum64 folds b into a 64-bit fingerprint. Multiplication wraps modulo 2^64.
func Sum64(b []byte) uint64 {
	var h uint64
	for _, c := range b {
		h = (h ^ uint64(c)) * Multiplier
	}
	return h
}

type digest struct {
	h uint64
}

// New returns a streaming hash.Hash64 computing the same fold as Sum64. Writes continue the fold, so
// any split of a message yields the Sum64 of the whole.
func New() hash.Hash64 { return &digest{} }

func (d *digest) Size() int { return 8 }

func (d *digest) BlockSize() int { return ChunkSize }

func (d *digest) Reset() { d.h = 0 }

func (d *digest) Sum64() uint64 { return d.h }

func (d *digest) Write(buf []byte) (int, error) {
	h := d.h
	for _, c := range buf {
		h = (h ^ uint64(c)) * Multiplier
	}
	d.h = h
	return len(buf), nil
}

func (d *digest) Sum(buf []byte) []byte {
	return binary.BigEndian.AppendUint64(buf, d.h)
}
