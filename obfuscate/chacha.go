package obfuscate

import (
	"encoding/binary"
	"github.com/aead/chacha20/chacha"
	"github.com/c4t-but-s4d/crackme"
	"github.com/zeebo/blake3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	chachaRounds  = 20
	deriveContext = "github.com/c4t-but-s4d/crackme 2024 table seal"
)

// ChaCha XORs the little-endian encoding of a table with a ChaCha20 keystream. It is its own inverse.
type ChaCha struct {
	Key   [chacha.KeySize]byte
	Nonce [chacha.NonceSize]byte
}

// NewChaCha derives the stream key from seed with BLAKE3's key derivation mode.
func NewChaCha(seed, nonce []byte) (ChaCha, error) {
	var c ChaCha
	if len(nonce) != chacha.NonceSize {
		return c, ErrKeyMaterial
	}
	if len(seed) == 0 {
		return c, ErrKeyMaterial
	}
	blake3.DeriveKey(deriveContext, seed, c.Key[:])
	copy(c.Nonce[:], nonce)
	return c, nil
}

func (c ChaCha) Seal(t crackme.Table) crackme.Table { return c.xor(t) }

func (c ChaCha) Reveal(t crackme.Table) crackme.Table { return c.xor(t) }

func (c ChaCha) xor(t crackme.Table) crackme.Table {
	var buf [crackme.Chunks * 8]byte
	for i, v := range t {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	chacha.XORKeyStream(buf[:], buf[:], c.Nonce[:], c.Key[:], chachaRounds)
	for i := range t {
		t[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return t
}
