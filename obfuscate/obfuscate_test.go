package obfuscate

import (
	"bytes"
	"encoding/hex"
	"github.com/c4t-but-s4d/crackme"
	qt "github.com/frankban/quicktest"
	"go/parser"
	"go/token"
	"strings"
	"sync"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const flag = "E2DAE8C479AEE65BFFBC0DA49C195C99"

var table = crackme.TableOf(flag)

func feistelSeed(c *qt.C) (seed [32]byte) {
	b, err := hex.DecodeString("5f1c9a0e7b3d42a8c6e1f0b9273d8e4a1b6c5d9e0f2a3b4c7d8e9fa0b1c2d3e4")
	c.Assert(err, qt.IsNil)
	copy(seed[:], b)
	return seed
}

func TestNewFeistel(t *testing.T) {
	c := qt.New(t)
	f := NewFeistel(feistelSeed(c))
	c.Assert(f.Keys, qt.Equals, [4]uint32{0x0f01382f, 0x2b0c5d8a, 0x6a6cc679, 0x0597dc61})
	c.Assert(f.encrypt(0x0123456789abcdef, 7), qt.Equals, uint64(0x457dae940b11d00c))
	c.Assert(f.decrypt(0x457dae940b11d00c, 7), qt.Equals, uint64(0x0123456789abcdef))
}

func TestFeistelRoundtrip(t *testing.T) {
	c := qt.New(t)
	f := NewFeistel(feistelSeed(c))
	sealed := f.Seal(table)
	c.Assert(sealed, qt.Not(qt.Equals), table)
	c.Assert(f.Reveal(sealed), qt.Equals, table)

	/* Equal entries must not seal to equal words. */
	var same crackme.Table
	same = f.Seal(same)
	c.Assert(same[0], qt.Not(qt.Equals), same[1])
}

func TestChaCha(t *testing.T) {
	c := qt.New(t)

	/* All-zero key and nonce: the first keystream block is the well-known 76b8e0ad... */
	var zero ChaCha
	ks := zero.Seal(crackme.Table{})
	c.Assert(ks[0], qt.Equals, uint64(0x903df1a0ade0b876))
	c.Assert(ks[7], qt.Equals, uint64(0x8665eeb269b687c3))

	cc, err := NewChaCha([]byte("seed"), []byte("12345678"))
	c.Assert(err, qt.IsNil)
	c.Assert(cc.Key, qt.Not(qt.Equals), zero.Key)
	c.Assert(cc.Reveal(cc.Seal(table)), qt.Equals, table)
}

func TestNewChaChaKeyMaterial(t *testing.T) {
	c := qt.New(t)
	_, err := NewChaCha([]byte("seed"), []byte("short"))
	c.Assert(err, qt.ErrorIs, ErrKeyMaterial)
	_, err = NewChaCha(nil, []byte("12345678"))
	c.Assert(err, qt.ErrorIs, ErrKeyMaterial)
}

func TestChain(t *testing.T) {
	c := qt.New(t)
	cc, err := NewChaCha([]byte("seed"), []byte("12345678"))
	c.Assert(err, qt.IsNil)
	f := NewFeistel(feistelSeed(c))

	tr := Chain(f, cc, Identity{})
	sealed := tr.Seal(table)
	c.Assert(sealed, qt.Equals, cc.Seal(f.Seal(table)))
	c.Assert(tr.Reveal(sealed), qt.Equals, table)
	c.Assert(Chain().Seal(table), qt.Equals, table)
}

func TestSource(t *testing.T) {
	c := qt.New(t)
	tr := NewFeistel(feistelSeed(c))
	s := NewSource(Seal(table, tr), tr)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Table()
			c.Check(err, qt.IsNil)
			c.Check(got, qt.Equals, table)
		}()
	}
	wg.Wait()
	c.Assert(crackme.NewVerifier(s).Check(flag), qt.IsTrue)
}

func TestSourceTampered(t *testing.T) {
	c := qt.New(t)
	sealed := Seal(table, Identity{})
	sealed.Words[3] ^= 1
	s := NewSource(sealed, Identity{})
	_, err := s.Table()
	c.Assert(err, qt.ErrorIs, ErrTampered)
	c.Assert(crackme.NewVerifier(s).Check(flag), qt.IsFalse)
}

func TestSourceNoTransform(t *testing.T) {
	_, err := NewSource(Seal(table, Identity{}), nil).Table()
	qt.New(t).Assert(err, qt.ErrorMatches, `revealing table: crackme/obfuscate: no transform`)
}

func TestFlatSum64(t *testing.T) {
	c := qt.New(t)
	msg := []byte(flag + flag)
	for i := 0; i <= len(msg); i++ {
		c.Assert(FlatSum64(msg[:i]), qt.Equals, crackme.Sum64(msg[:i]), qt.Commentf("length %d", i))
	}
	for x := uint64(0); x < 1<<10; x++ {
		c.Assert(opaque(x), qt.IsTrue)
		c.Assert(opaque(^x), qt.IsTrue)
	}
	v := crackme.NewVerifier(table, crackme.WithHasher(FlatSum64))
	c.Assert(v.Check(flag), qt.IsTrue)
	c.Assert(v.Check(strings.ToLower(flag)), qt.IsFalse)
}

func TestPrepare(t *testing.T) {
	c := qt.New(t)
	e, err := Prepare("revision", "macro", table, []byte("seed"), []byte("12345678"))
	c.Assert(err, qt.IsNil)
	c.Assert(e.Sealed.Words, qt.Not(qt.Equals), table)

	got, err := NewSource(e.Sealed, e.Transform()).Table()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, table)

	again, err := Prepare("revision", "macro", table, []byte("seed"), []byte("12345678"))
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.Equals, e)

	fresh, err := Prepare("revision", "macro", table, []byte("seed"), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(fresh.Transform().Reveal(fresh.Sealed.Words), qt.Equals, table)

	_, err = Prepare("revision", "macro", table, nil, nil)
	c.Assert(err, qt.ErrorIs, ErrKeyMaterial)
}

func TestEmit(t *testing.T) {
	c := qt.New(t)
	e, err := Prepare("revision", "macro", table, []byte("seed"), []byte("12345678"))
	c.Assert(err, qt.IsNil)

	buf := &bytes.Buffer{}
	c.Assert(Emit(buf, e), qt.IsNil)
	src := buf.String()
	c.Assert(src, qt.Matches, `(?s)// Code generated by flagtool seal; DO NOT EDIT\..*`)
	c.Assert(strings.Contains(src, "var macroTransform = obfuscate.Chain("), qt.IsTrue)
	c.Assert(strings.Contains(src, "var macroSealed = obfuscate.Sealed{"), qt.IsTrue)

	f, err := parser.ParseFile(token.NewFileSet(), "macro_gen.go", src, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(f.Name.Name, qt.Equals, "revision")

	c.Assert(Emit(buf, Emission{Name: "macro"}), qt.ErrorMatches, `crackme/obfuscate: emission needs a package and a name`)
}
