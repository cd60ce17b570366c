package revision

import (
	"errors"
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/c4t-but-s4d/crackme/log"
	"github.com/c4t-but-s4d/crackme/obfuscate"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Every generation of the challenge checks the same flag with the same algorithm. They differ only in
// how much of the target table and of the hasher a disassembler gets to see.

type Revision int

const (
	Plain    Revision = iota /* decimal literals */
	Shuffled                 /* hexadecimal literals, stored out of order */
	Macro                    /* sealed table, flattened hasher */
)

// Default is the revision the challenge ships.
const Default = Macro

var ErrUnknown = errors.New("crackme/revision: unknown revision")

var names = [...]string{Plain: "plain", Shuffled: "shuffled", Macro: "macro"}

func Revisions() []Revision { return []Revision{Plain, Shuffled, Macro} }

func ParseRevision(s string) (Revision, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if s == name {
			return Revision(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
}

func (r Revision) String() string {
	if r < 0 || int(r) >= len(names) {
		return "revision(" + fmt.Sprint(int(r)) + ")"
	}
	return names[r]
}

// Set and Type let a Revision be bound to a command-line flag.
func (r *Revision) Set(s string) error {
	v, err := ParseRevision(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r *Revision) Type() string { return "revision" }

var plainTable = crackme.Table{
	11200688220910254682,
	11200380368408825194,
	16146349676620574858,
	11200565025114669588,
	12165273152048139049,
	9396870039570576529,
	18071888434317316754,
	14218471961505630534,
}

type shuffledTable struct {
	order [crackme.Chunks]int
	words [crackme.Chunks]uint64
}

var shuffled = shuffledTable{
	order: [crackme.Chunks]int{5, 2, 7, 0, 3, 6, 1, 4},
	words: [crackme.Chunks]uint64{
		0x82686383a51d7491,
		0xe0135b7bde36708a,
		0xc55228ea92650946,
		0x9b70d697d741fa5a,
		0x9b70668c159fc214,
		0xfacc3ec833f95292,
		0x9b6fbe9a58444d6a,
		0xa8d3bb7a376d0b29,
	},
}

func (s shuffledTable) Table() (crackme.Table, error) {
	var t crackme.Table
	for i, pos := range s.order {
		t[pos] = s.words[i]
	}
	return t, nil
}

var macro = obfuscate.NewSource(macroSealed, macroTransform)

func (r Revision) source() (crackme.TableSource, error) {
	switch r {
	case Plain:
		return plainTable, nil
	case Shuffled:
		return shuffled, nil
	case Macro:
		return macro, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknown, r)
}

// Table reveals the revision's target table.
func (r Revision) Table() (crackme.Table, error) {
	src, err := r.source()
	if err != nil {
		return crackme.Table{}, err
	}
	return src.Table()
}

// Verifier returns a verifier for r. An unknown revision yields a verifier that rejects everything.
func (r Revision) Verifier() *crackme.Verifier {
	opts := []crackme.Option{crackme.WithLogger(log.Logger().With("revision", r.String()))}
	src, err := r.source()
	if err != nil {
		log.Errorf("building verifier: %v", err)
		src = unavailable{err}
	}
	if r == Macro {
		opts = append(opts, crackme.WithHasher(obfuscate.FlatSum64))
	}
	return crackme.NewVerifier(src, opts...)
}

type unavailable struct{ err error }

func (u unavailable) Table() (crackme.Table, error) { return crackme.Table{}, u.err }

// Check verifies candidate against the shipped revision.
func Check(candidate string) bool {
	return Default.Verifier().Check(candidate)
}
