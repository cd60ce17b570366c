package crackme

import (
	"encoding/binary"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	ChunkSize  = 4
	Chunks     = 8
	FlagLength = ChunkSize * Chunks
)

type crackmeError string

func (e crackmeError) Error() string {
	return "crackme: " + string(e)
}

// Table is the ordered sequence of per-chunk fingerprints a flag must reproduce.
type Table [Chunks]uint64

// ID names t without printing it: the xxh3 digest of its little-endian encoding.
func (t Table) ID() uint64 {
	var buf [Chunks * 8]byte
	for i, v := range t {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return xxh3.Hash(buf[:])
}

// TableSource yields the target table of a verifier. Obscured sources reveal it on demand.
type TableSource interface {
	Table() (Table, error)
}

// Table is its own source.
func (t Table) Table() (Table, error) { return t, nil }

// TableOf computes the table a 32-byte secret hashes to.
func TableOf(secret string) Table {
	if len(secret) != FlagLength {
		panic(crackmeError("invalid secret length: " + strconv.Itoa(len(secret))))
	}
	var t Table
	for k := range t {
		t[k] = Sum64(Chunk([]byte(secret), k))
	}
	return t
}

// Chunk returns the k-th chunk of b. The last chunk is cut short rather than read past the end of b.
func Chunk(b []byte, k int) []byte {
	start := k * ChunkSize
	if start >= len(b) {
		return b[len(b):]
	}
	return b[start:min(start+ChunkSize, len(b))]
}

type Option func(*Verifier)

// WithHasher replaces the chunk hasher. Any replacement must agree with Sum64 on every input.
func WithHasher(fn func([]byte) uint64) Option {
	return func(v *Verifier) { v.hash = fn }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(v *Verifier) { v.log = l }
}

// Verifier decides whether a candidate reproduces its table. It is safe for concurrent use as long as
// its TableSource is.
type Verifier struct {
	src  TableSource
	hash func([]byte) uint64
	log  *zap.SugaredLogger
}

func NewVerifier(src TableSource, opts ...Option) *Verifier {
	v := &Verifier{src: src, hash: Sum64, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check reports whether candidate is the flag. Which chunk failed is never surfaced.
func (v *Verifier) Check(candidate string) bool {
	if len(candidate) != FlagLength {
		v.log.Debugw("length precheck rejected candidate", "length", len(candidate))
		return false
	}
	t, err := v.src.Table()
	if err != nil {
		v.log.Errorw("target table unavailable", "error", err)
		return false
	}

	b := []byte(candidate)
	for i := 0; i < len(b); i += ChunkSize {
		if v.hash(b[i:min(i+ChunkSize, len(b))]) != t[i/ChunkSize] {
			return false
		}
	}
	return true
}
