// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import (
	"math"

	"github.com/cockroachdb/redact"
)

// The primitive underneath every backend is the Wichmann-Hill AS 183
// generator: three multiplicative congruential generators with pairwise
// coprime moduli whose combined, wrapped sum is uniform in [0, 1). The
// combined period is roughly 6.95e12 steps.
const (
	mod1 = 30269
	mod2 = 30307
	mod3 = 30323

	mul1 = 171
	mul2 = 172
	mul3 = 170
)

// Seed is the internal state of the primitive: an ordered triple of
// integers. Every draw advances the triple in place. Seeds are never
// shared between generator instances; each instance owns its own copy.
type Seed struct {
	a, b, c int64
}

// MakeSeed constructs a Seed from three integer components. The components
// are reduced to their canonical non-negative residues modulo the three
// generator moduli, so any int64 values are accepted.
//
// A component congruent to 0 modulo its modulus stays zero under every
// subsequent draw, weakening the generator; the all-zero triple produces
// a constant 0.0 stream. Callers seeding from arbitrary integers should
// avoid multiples of 30269, 30307 and 30323.
func MakeSeed(a, b, c int64) Seed {
	return Seed{
		a: ((a % mod1) + mod1) % mod1,
		b: ((b % mod2) + mod2) % mod2,
		c: ((c % mod3) + mod3) % mod3,
	}
}

// DefaultSeed returns the fixed baseline seed. It is a pure function: it
// mutates no generator state.
func DefaultSeed() Seed {
	return Seed{a: 3172, b: 9814, c: 20125}
}

// next advances the seed one step and returns a uniform float in [0, 1).
func (s *Seed) next() float64 {
	s.a = s.a * mul1 % mod1
	s.b = s.b * mul2 % mod2
	s.c = s.c * mul3 % mod3
	r := float64(s.a)/mod1 + float64(s.b)/mod2 + float64(s.c)/mod3
	return r - math.Trunc(r)
}

// String implements fmt.Stringer.
func (s Seed) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Seed) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("(%d,%d,%d)", s.a, s.b, s.c)
}
