// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import (
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// Source adapts a Generator into a rand.Source so the x/exp/rand
// distributions can be driven by seeded triple state. Each Uint64
// consumes eight byte draws from the underlying generator, so the adapter
// inherits the generator's determinism and concurrency properties.
type Source struct {
	g Generator
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source drawing from g.
func NewSource(g Generator) *Source { return &Source{g: g} }

// Uint64 implements rand.Source. It panics if the underlying generator
// fails, which for the backends in this package only happens on a stopped
// Instance.
func (s *Source) Uint64() uint64 {
	p, err := s.g.Bytes(8)
	if err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(p)
}

// Seed implements rand.Source. When the underlying generator supports
// reseeding (the ambient backend does) the integer is split into a seed
// triple; otherwise Seed is a no-op, matching the fixed-seed contract of
// isolated instances.
func (s *Source) Seed(n uint64) {
	type seeder interface {
		SetSeed(Seed) (Seed, bool)
	}
	if g, ok := s.g.(seeder); ok {
		g.SetSeed(MakeSeed(
			int64(n%mod1),
			int64(n/mod1%mod2),
			int64(n/mod1/mod2%mod3),
		))
	}
}
