package obfuscate

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/minio/sha256-simd"
	"sync"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Constant transforms keep a target table out of a binary's read-only data: what is compiled in is the
// sealed form, and the literal values only exist in memory after Reveal.

type obfuscateError string

func (e obfuscateError) Error() string {
	return "crackme/obfuscate: " + string(e)
}

var (
	ErrTampered    = errors.New("crackme/obfuscate: sealed table failed its integrity check")
	ErrKeyMaterial = errors.New("crackme/obfuscate: invalid key material")
)

// Transform is a reversible rewrite of a table: Reveal(Seal(t)) == t for every t.
type Transform interface {
	Seal(t crackme.Table) crackme.Table
	Reveal(t crackme.Table) crackme.Table
}

type Identity struct{}

func (Identity) Seal(t crackme.Table) crackme.Table { return t }

func (Identity) Reveal(t crackme.Table) crackme.Table { return t }

type chain []Transform

// Chain composes transforms. Sealing runs them in order; revealing undoes them in reverse.
func Chain(ts ...Transform) Transform { return chain(ts) }

func (c chain) Seal(t crackme.Table) crackme.Table {
	for _, tr := range c {
		t = tr.Seal(t)
	}
	return t
}

func (c chain) Reveal(t crackme.Table) crackme.Table {
	for i := len(c) - 1; i >= 0; i-- {
		t = c[i].Reveal(t)
	}
	return t
}

// Sealed is a table in the form it is compiled into a binary.
type Sealed struct {
	Words crackme.Table
	Sum   uint64 /* first 8 bytes of SHA-256(Words), little-endian */
}

func Seal(t crackme.Table, tr Transform) Sealed {
	s := Sealed{Words: tr.Seal(t)}
	s.Sum = s.checksum()
	return s
}

func (s Sealed) checksum() uint64 {
	var buf [crackme.Chunks * 8]byte
	for i, v := range s.Words {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	sum := sha256.Sum256(buf[:])
	return binary.LittleEndian.Uint64(sum[:8])
}

// Source reveals a sealed table on first use and keeps the result.
type Source struct {
	Sealed    Sealed
	Transform Transform

	once  sync.Once
	table crackme.Table
	err   error
}

var _ crackme.TableSource = (*Source)(nil)

func NewSource(s Sealed, tr Transform) *Source {
	return &Source{Sealed: s, Transform: tr}
}

func (s *Source) Table() (crackme.Table, error) {
	s.once.Do(func() {
		if s.Sealed.checksum() != s.Sealed.Sum {
			s.err = ErrTampered
			return
		}
		if s.Transform == nil {
			s.err = fmt.Errorf("revealing table: %w", obfuscateError("no transform"))
			return
		}
		s.table = s.Transform.Reveal(s.Sealed.Words)
	})
	return s.table, s.err
}
