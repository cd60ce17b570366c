package crackme

import (
	"errors"
	qt "github.com/frankban/quicktest"
	"strings"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const flag = "E2DAE8C479AEE65BFFBC0DA49C195C99"

var table = Table{
	11200688220910254682,
	11200380368408825194,
	16146349676620574858,
	11200565025114669588,
	12165273152048139049,
	9396870039570576529,
	18071888434317316754,
	14218471961505630534,
}

func TestTableOf(t *testing.T) {
	c := qt.New(t)
	c.Assert(TableOf(flag), qt.Equals, table)
	c.Assert(func() { TableOf("short") }, qt.PanicMatches, `crackme: invalid secret length: 5`)
}

func TestTableID(t *testing.T) {
	c := qt.New(t)
	c.Assert(table.ID(), qt.Equals, table.ID())
	other := table
	other[7]++
	c.Assert(other.ID(), qt.Not(qt.Equals), table.ID())
}

func TestChunk(t *testing.T) {
	c := qt.New(t)
	b := []byte("abcdefghij")
	c.Assert(string(Chunk(b, 0)), qt.Equals, "abcd")
	c.Assert(string(Chunk(b, 1)), qt.Equals, "efgh")
	c.Assert(string(Chunk(b, 2)), qt.Equals, "ij")
	c.Assert(Chunk(b, 3), qt.HasLen, 0)
	c.Assert(Chunk(nil, 0), qt.HasLen, 0)
}

func TestCheck(t *testing.T) {
	c := qt.New(t)
	v := NewVerifier(table)
	c.Assert(v.Check(flag), qt.IsTrue)
	c.Assert(v.Check(flag), qt.IsTrue)
	c.Assert(v.Check(strings.ToLower(flag)), qt.IsFalse)
	c.Assert(v.Check("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"), qt.IsFalse)
}

func TestCheckLength(t *testing.T) {
	c := qt.New(t)
	calls := 0
	v := NewVerifier(table, WithHasher(func(b []byte) uint64 {
		calls++
		return Sum64(b)
	}))
	for _, candidate := range []string{"", flag[:10], flag[:31], flag + "9", flag + flag} {
		c.Assert(v.Check(candidate), qt.IsFalse, qt.Commentf("length %d", len(candidate)))
	}
	c.Assert(calls, qt.Equals, 0)
}

func TestCheckMutations(t *testing.T) {
	c := qt.New(t)
	v := NewVerifier(table)
	b := []byte(flag)
	for i := range b {
		orig := b[i]
		for ch := byte(' '); ch <= '~'; ch++ {
			if ch == orig {
				continue
			}
			b[i] = ch
			c.Assert(v.Check(string(b)), qt.IsFalse, qt.Commentf("%q", b))
		}
		b[i] = orig
	}
}

type failing struct{}

func (failing) Table() (Table, error) { return Table{}, errors.New("sealed table is gone") }

func TestCheckUnavailableTable(t *testing.T) {
	qt.New(t).Assert(NewVerifier(failing{}).Check(flag), qt.IsFalse)
}
