// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

// Ambient is the implicit backend: a generator whose seed lives directly
// in the value with no synchronization. It backs the package-level
// convenience functions. An Ambient is meant for a single logical caller
// at a time; callers that need concurrent draws from shared state should
// use an Instance.
//
// The zero value is valid and seeds itself with DefaultSeed on first use.
type Ambient struct {
	seed   Seed
	seeded bool
}

var _ Generator = (*Ambient)(nil)

func (g *Ambient) ensure() {
	if !g.seeded {
		g.seed = DefaultSeed()
		g.seeded = true
	}
}

// Reseed resets the generator to the default seed. It returns the
// previous seed and whether the generator had been seeded before the
// call.
func (g *Ambient) Reseed() (prev Seed, wasSeeded bool) {
	prev, wasSeeded = g.seed, g.seeded
	g.seed = DefaultSeed()
	g.seeded = true
	return prev, wasSeeded
}

// SetSeed sets the seed explicitly. It returns the previous seed and
// whether the generator had been seeded before the call.
func (g *Ambient) SetSeed(s Seed) (prev Seed, wasSeeded bool) {
	prev, wasSeeded = g.seed, g.seeded
	g.seed = s
	g.seeded = true
	return prev, wasSeeded
}

// NewSeed derives a fresh pseudo-random seed triple by drawing from the
// generator itself, advancing its state by three draws. The components
// fall in [0,9999), [0,9999) and [0,99999) respectively.
func (g *Ambient) NewSeed() Seed {
	g.ensure()
	a := sampleInt(g.seed.next, 9999)
	b := sampleInt(g.seed.next, 9999)
	c := sampleInt(g.seed.next, 99999)
	return MakeSeed(a, b, c)
}

// Unit implements Generator.
func (g *Ambient) Unit() (float64, error) {
	g.ensure()
	return g.seed.next(), nil
}

// Bounded implements Generator.
func (g *Ambient) Bounded(b Bound) (Value, error) {
	g.ensure()
	return sampleBounded(g.seed.next, b, nil)
}

// Bytes implements Generator.
func (g *Ambient) Bytes(n int) ([]byte, error) {
	g.ensure()
	return sampleBytes(g.seed.next, n)
}

// global backs the package-level convenience functions. Access is not
// synchronized: the package-level API mirrors a single-caller convenience
// surface, not a shared service. Callers that draw from multiple
// goroutines should create their own Instance.
var global Ambient

// Unit draws the next uniform float in [0, 1) from the process-wide
// ambient generator.
func Unit() (float64, error) { return global.Unit() }

// Bounded draws a value constrained by b from the process-wide ambient
// generator.
func Bounded(b Bound) (Value, error) { return global.Bounded(b) }

// Bytes draws n uniform bytes from the process-wide ambient generator.
func Bytes(n int) ([]byte, error) { return global.Bytes(n) }

// Reseed resets the process-wide ambient generator to the default seed,
// returning the previous seed and whether it had been seeded.
func Reseed() (Seed, bool) { return global.Reseed() }

// SetSeed seeds the process-wide ambient generator, returning the
// previous seed and whether it had been seeded.
func SetSeed(s Seed) (Seed, bool) { return global.SetSeed(s) }

// NewSeed derives a fresh seed triple from the process-wide ambient
// generator.
func NewSeed() Seed { return global.NewSeed() }
