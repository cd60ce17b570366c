package obfuscate

import "github.com/c4t-but-s4d/crackme"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Dispatcher labels. Transitions are stored XORed with labelKey so that no two consecutive states
appear as adjacent literals. */
const (
	labelKey   = 0x6d2b79f5
	stateEnter = 0x1f83d9ab
	stateTest  = 0x5be0cd19
	stateMix   = 0x3c6ef372
	stateMul   = 0x510e527f
	stateStep  = 0x9b05688c
	stateExit  = 0xa54ff53a
	stateDecoy = 0x243f6a88
)

// opaque is true for every x: one of x and x+1 is even, and wrapping preserves parity.
func opaque(x uint64) bool { return x*(x+1)&1 == 0 }

// FlatSum64 computes crackme.Sum64 through a flattened dispatch loop.
func FlatSum64(b []byte) uint64 {
	var h, x uint64
	var i int
	next := uint32(stateEnter ^ labelKey)
	for {
		switch next ^ labelKey {
		case stateEnter:
			h, i = 0, 0
			next = stateTest ^ labelKey
		case stateTest:
			if i < len(b) {
				next = stateMix ^ labelKey
			} else {
				next = stateExit ^ labelKey
			}
		case stateMix:
			x = h ^ uint64(b[i])
			next = stateMul ^ labelKey
		case stateMul:
			if opaque(x) {
				h = x * crackme.Multiplier
				next = stateStep ^ labelKey
			} else {
				next = stateDecoy ^ labelKey
			}
		case stateStep:
			i++
			if opaque(h ^ uint64(i)) {
				next = stateTest ^ labelKey
			} else {
				next = stateEnter ^ labelKey
			}
		case stateDecoy:
			h = (h + x) * (crackme.Multiplier ^ 0xff)
			next = stateStep ^ labelKey
		case stateExit:
			return h
		default:
			return h ^ uint64(next)
		}
	}
}
