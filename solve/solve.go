package solve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"math"
	"math/bits"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Every chunk of a flag is hashed on its own, so a table falls one chunk at a time: recovering a
// 32-byte flag costs eight searches over 4-byte strings rather than one over 32-byte strings.

var (
	ErrNoPreimage = errors.New("crackme/solve: no preimage in alphabet")
	ErrAmbiguous  = errors.New("crackme/solve: more than one preimage in alphabet")
)

type Strategy int

const (
	Peel       Strategy = iota /* walks the fold backwards with the inverse of crackme.Multiplier */
	Exhaustive                 /* hashes every candidate */
)

var strategyNames = [...]string{Peel: "peel", Exhaustive: "exhaustive"}

func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range strategyNames {
		if s == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("crackme/solve: unknown strategy %q", s)
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func (s *Strategy) Set(v string) error {
	st, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func (s *Strategy) Type() string { return "strategy" }

// Printable is every printable ASCII byte, space included.
const Printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

type Options struct {
	Alphabet string /* bytes a chunk may contain, Printable if empty */
	Workers  int    /* Exhaustive only, runtime.NumCPU() if less than one */
	Strategy Strategy
	Logger   *zap.SugaredLogger
}

func (o Options) withDefaults() Options {
	if o.Alphabet == "" {
		o.Alphabet = Printable
	}
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

// alphabet deduplicates and sorts, so results come out in lexicographic order.
func alphabet(s string) []byte {
	var seen [256]bool
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Chunk returns every string of n alphabet bytes whose fingerprint is target.
func Chunk(ctx context.Context, target uint64, n int, opts Options) ([][]byte, error) {
	opts = opts.withDefaults()
	if n < 0 {
		return nil, fmt.Errorf("crackme/solve: negative chunk length %d", n)
	}
	alpha := alphabet(opts.Alphabet)

	var found [][]byte
	var err error
	switch opts.Strategy {
	case Peel:
		found, err = peel(ctx, target, n, alpha)
	case Exhaustive:
		found, err = exhaust(ctx, target, n, alpha, opts.Workers)
	default:
		return nil, fmt.Errorf("crackme/solve: unknown strategy %s", opts.Strategy)
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(found, func(i, j int) bool { return bytes.Compare(found[i], found[j]) < 0 })
	return found, nil
}

// Table recovers the flag whose chunks hash to t, solving all chunks concurrently.
func Table(ctx context.Context, t crackme.Table, opts Options) (string, error) {
	opts = opts.withDefaults()
	var parts [crackme.Chunks][]byte

	g, ctx := errgroup.WithContext(ctx)
	for k := range t {
		k := k
		g.Go(func() error {
			start := time.Now()
			found, err := Chunk(ctx, t[k], crackme.ChunkSize, opts)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", k, err)
			}
			switch len(found) {
			case 0:
				return fmt.Errorf("chunk %d: %w", k, ErrNoPreimage)
			case 1:
				parts[k] = found[0]
			default:
				return fmt.Errorf("chunk %d: %w (%d candidates)", k, ErrAmbiguous, len(found))
			}
			opts.Logger.Debugw("chunk solved", "chunk", k, "strategy", opts.Strategy.String(),
				"elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return string(bytes.Join(parts[:], nil)), nil
}

/* inverse is crackme.Multiplier⁻¹ mod 2^64. Newton's iteration doubles the correct low bits each
step, starting from 3 since m*m ≡ 1 (mod 8) for any odd m. */
var inverse = func() uint64 {
	const m = crackme.Multiplier
	inv := uint64(m)
	for i := 0; i < 5; i++ {
		inv *= 2 - m*inv
	}
	return inv
}()

// bounds[i] is the largest fingerprint i alphabet bytes can fold to while no product has wrapped yet.
func bounds(n int, alpha []byte) []uint64 {
	b := make([]uint64, n+1)
	wrapped := false
	var top uint64
	if len(alpha) > 0 {
		top = uint64(alpha[len(alpha)-1])
	}
	for i := 1; i <= n; i++ {
		if wrapped {
			b[i] = math.MaxUint64
			continue
		}
		width := max(bits.Len64(b[i-1]), bits.Len64(top))
		hi, lo := bits.Mul64(1<<width-1, crackme.Multiplier)
		if hi != 0 {
			wrapped = true
			b[i] = math.MaxUint64
			continue
		}
		b[i] = lo
	}
	return b
}

func peel(ctx context.Context, target uint64, n int, alpha []byte) ([][]byte, error) {
	limit := bounds(n, alpha)
	buf := make([]byte, n)
	var found [][]byte

	var walk func(h uint64, depth int)
	walk = func(h uint64, depth int) {
		if depth == 0 {
			if h == 0 {
				found = append(found, append([]byte(nil), buf...))
			}
			return
		}
		if h > limit[depth] {
			return
		}
		x := h * inverse
		for _, c := range alpha {
			buf[depth-1] = c
			walk(x^uint64(c), depth-1)
		}
	}

	if n == 0 || target > limit[n] {
		walk(target, 0)
		return found, nil
	}
	x := target * inverse
	for _, c := range alpha {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf[n-1] = c
		walk(x^uint64(c), n-1)
	}
	return found, nil
}

func exhaust(ctx context.Context, target uint64, n int, alpha []byte, workers int) ([][]byte, error) {
	if n == 0 {
		if target == 0 {
			return [][]byte{{}}, nil
		}
		return nil, nil
	}

	var (
		found   [][]byte
		mapping sync.Mutex
		summing sync.WaitGroup
	)
	to := make(chan byte, len(alpha))
	for _, c := range alpha {
		to <- c
	}
	close(to)

	summing.Add(workers)
	for i := workers; i > 0; i-- {
		go func() {
			defer summing.Done()
			buf := make([]byte, n)
			var walk func(h uint64, depth int)
			walk = func(h uint64, depth int) {
				if depth == n {
					if h == target {
						mapping.Lock()
						found = append(found, append([]byte(nil), buf...))
						mapping.Unlock()
					}
					return
				}
				for _, c := range alpha {
					buf[depth] = c
					walk((h^uint64(c))*crackme.Multiplier, depth+1)
				}
			}
			for first := range to {
				if ctx.Err() != nil {
					return
				}
				buf[0] = first
				walk(uint64(first)*crackme.Multiplier, 1)
			}
		}()
	}
	summing.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return found, nil
}
