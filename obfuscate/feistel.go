package obfuscate

import (
	"encoding/binary"
	"github.com/c4t-but-s4d/crackme"
	"github.com/minio/sha256-simd"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const feistelRounds = 4

// Feistel enciphers every table entry with a balanced Feistel network over 32-bit halves. The entry's
// position is the tweak, so equal entries seal to different words.
type Feistel struct {
	Keys [feistelRounds]uint32
}

// NewFeistel derives round keys from seed: key i is the first 4 bytes of SHA-256(seed || i).
func NewFeistel(seed [32]byte) Feistel {
	var f Feistel
	for i := range f.Keys {
		h := sha256.New()
		h.Write(seed[:])
		h.Write([]byte{byte(i)})
		f.Keys[i] = binary.LittleEndian.Uint32(h.Sum(nil)[:4])
	}
	return f
}

func (f Feistel) Seal(t crackme.Table) crackme.Table {
	for i, v := range t {
		t[i] = f.encrypt(v, uint32(i))
	}
	return t
}

func (f Feistel) Reveal(t crackme.Table) crackme.Table {
	for i, v := range t {
		t[i] = f.decrypt(v, uint32(i))
	}
	return t
}

func (f Feistel) encrypt(v uint64, tweak uint32) uint64 {
	left, right := uint32(v>>32), uint32(v)
	for i := 0; i < feistelRounds; i++ {
		left, right = right, left^feistelRound(right, tweak, f.Keys[i])
	}
	return uint64(left)<<32 | uint64(right)
}

func (f Feistel) decrypt(v uint64, tweak uint32) uint64 {
	left, right := uint32(v>>32), uint32(v)
	for i := feistelRounds - 1; i >= 0; i-- {
		left, right = right^feistelRound(left, tweak, f.Keys[i]), left
	}
	return uint64(left)<<32 | uint64(right)
}

func feistelRound(right, tweak, key uint32) uint32 {
	x := right ^ tweak
	x += key*0x9e3779b1 + 0x7f4a7c15
	x = bits.RotateLeft32(x^key, int(key&31))
	x ^= x >> 16
	return x
}
