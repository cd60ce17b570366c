package main

import (
	"errors"
	"github.com/c4t-but-s4d/crackme/revision"
	qt "github.com/frankban/quicktest"
	"strings"
	"testing"
	"testing/iotest"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const flag = "E2DAE8C479AEE65BFFBC0DA49C195C99"

func TestAnswer(t *testing.T) {
	c := qt.New(t)
	for _, r := range revision.Revisions() {
		for _, tc := range []struct {
			in, want string
		}{
			{flag + "\n", "gj"},
			{flag + "\r\n", "gj"},
			{flag, "gj"},
			{"  " + flag + "\t\n", "gj"},
			{flag + "\nsecond line\n", "gj"},
			{strings.ToLower(flag) + "\n", "bj"},
			{"0123456789\n", "bj"},
			{flag[:31] + "\n", "bj"},
			{flag + "0\n", "bj"},
			{"\n", "bj"},
		} {
			c.Assert(answer(strings.NewReader(tc.in), r), qt.Equals, tc.want, qt.Commentf("%s %q", r, tc.in))
		}
	}
}

func TestAnswerNoInput(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { answer(strings.NewReader(""), revision.Default) }, qt.PanicMatches, "EOF")
	c.Assert(func() { answer(iotest.ErrReader(errors.New("stdin closed")), revision.Default) },
		qt.PanicMatches, "stdin closed")
}
