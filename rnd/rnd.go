// Package rnd provides the randomness primitives the generator threads
// through every other component: a Bernoulli trial, an exponential
// sample (real and rounded-up integer), and a uniform choice over a small
// set. The source is an explicit, injectable *rand.Rand rather than the
// package-global generator, so a run can be reproduced or parallelized
// without touching global state.
package rnd

import (
	"math"
	"math/rand"
	"time"
)

// Source wraps a *rand.Rand together with the seed that produced it, so a
// caller can always recover how a run was seeded. Useful for golden tests
// and bug reports.
type Source struct {
	rand *rand.Rand
	seed int64
}

// NewSource builds a Source from an explicit seed. Two Sources built from
// the same seed produce identical sequences.
func NewSource(seed int64) *Source {
	return &Source{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewTimeSeeded builds a Source seeded from the current time, for runs
// that don't need reproducibility.
func NewTimeSeeded() *Source {
	return NewSource(time.Now().UnixNano())
}

// Seed reports the seed this Source was constructed with.
func (s *Source) Seed() int64 { return s.seed }

// Intn satisfies ast.Randomizer so a Source can be passed directly to
// Type.SampleLiteral.
func (s *Source) Intn(n int) int { return s.rand.Intn(n) }

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 { return s.rand.Float64() }

// Chance returns true with probability p. p <= 0 always returns false;
// p >= 1 always returns true.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rand.Float64() < p
}

// ExpSample returns -ln(U)/lambda for U drawn uniformly from (0, 1).
func (s *Source) ExpSample(lambda float64) float64 {
	u := s.rand.Float64()
	for u == 0 {
		u = s.rand.Float64()
	}
	return -math.Log(u) / lambda
}

// ExpInt returns ceil(ExpSample(1/mean)) as an unsigned integer. Used to
// sample statement counts; a return of zero is legal (empty block). mean
// <= 0 degenerates to zero.
func (s *Source) ExpInt(mean float64) uint64 {
	if mean <= 0 {
		return 0
	}
	v := s.ExpSample(1 / mean)
	return uint64(math.Ceil(v))
}

// Choose picks a uniform element from a non-empty slice. It panics on an
// empty slice: an empty choice set is a programmer-model error, not an
// input error, and callers are expected to guard against it upstream.
func Choose[T any](s *Source, xs []T) T {
	if len(xs) == 0 {
		panic("rnd: Choose called with an empty slice")
	}
	return xs[s.rand.Intn(len(xs))]
}
