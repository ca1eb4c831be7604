// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

// Generator is the capability every backend provides: drawing uniform
// values from seeded state. It is implemented by *Ambient, whose seed
// lives in the value with no synchronization, and by *Instance, which
// owns an isolated seed and serializes concurrent callers.
//
// The distribution-shaping logic behind Bounded and Bytes is shared by
// all backends; backends differ only in who owns the seed and how access
// to it is synchronized.
type Generator interface {
	// Unit returns the next uniform float in [0, 1), advancing the seed
	// one step.
	Unit() (float64, error)

	// Bounded returns a uniform value constrained by b; see the Bound
	// constructors for the exact domains. Scalar zero and negative bounds
	// yield the matching zero value without consuming a draw.
	Bounded(b Bound) (Value, error)

	// Bytes returns n uniformly distributed bytes in draw order. n must be
	// non-negative. Given identical seeds the output is bit-exact
	// reproducible.
	Bytes(n int) ([]byte, error)
}
