// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/uniform/internal/invariants"
)

// A drawFunc returns the next uniform float in [0, 1), advancing the
// underlying seed one step. The sampler layer is written entirely against
// this primitive so the distribution-shaping logic is shared by every
// backend.
type drawFunc func() float64

// rejectionCap bounds the rejection sampling loops in invariants builds.
// With a sane primitive the probability of even a handful of consecutive
// rejections is negligible; hitting the cap means the primitive is
// broken. Release builds retry indefinitely.
const rejectionCap = 1 << 16

// sampleBounded dispatches on the bound kind and applies the matching
// sampling strategy. rejected, if non-nil, is invoked once per redraw
// forced by rejection sampling.
func sampleBounded(draw drawFunc, b Bound, rejected func()) (Value, error) {
	if err := b.validate(); err != nil {
		return Value{}, err
	}
	switch b.kind {
	case boundInt:
		if b.n <= 0 {
			return intValue(0), nil
		}
		return intValue(sampleInt(draw, b.n)), nil
	case boundFloat:
		if b.f <= 0 {
			return floatValue(0), nil
		}
		return floatValue(sampleFloat(draw, b.f, rejected)), nil
	case boundIntRange:
		return intValue(sampleIntRange(draw, b.lo, b.hi)), nil
	case boundFloatRange:
		return floatValue(sampleFloatRange(draw, b.flo, b.fhi, rejected)), nil
	default:
		return Value{}, errors.AssertionFailedf("unknown bound kind %d", b.kind)
	}
}

// sampleInt returns a uniform integer in [0, n). n must be positive.
func sampleInt(draw drawFunc, n int64) int64 {
	v := int64(draw() * float64(n))
	// draw() < 1 so v < n mathematically, but for large n the product can
	// round up to exactly n.
	if v >= n {
		v = n - 1
	}
	return v
}

// sampleFloat returns a uniform float in [0, f). f must be positive.
// Scaling a unit draw by f can round up to exactly f when the draw is
// arbitrarily close to 1.0; out-of-range results are rejected and
// redrawn.
func sampleFloat(draw drawFunc, f float64, rejected func()) float64 {
	for i := 0; ; i++ {
		if x := draw() * f; x < f {
			return x
		}
		if rejected != nil {
			rejected()
		}
		if invariants.Enabled && i >= rejectionCap {
			panic("uniform: float bound rejection sampling failed to terminate")
		}
	}
}

// sampleIntRange returns a uniform integer in [lo, hi] inclusive.
func sampleIntRange(draw drawFunc, lo, hi int64) int64 {
	switch {
	case lo == hi:
		// Single-element range; no draw is consumed.
		return lo
	case lo == 1:
		// Historical special case: the primitive scales naturally onto
		// [1, hi]. Identical in distribution to the general offset path.
		return 1 + sampleInt(draw, hi)
	default:
		return lo + sampleInt(draw, hi-lo+1)
	}
}

// sampleFloatRange returns a uniform float in [lo, hi], both ends
// inclusive. Rounding at either edge of the scaled draw is handled by
// rejection.
func sampleFloatRange(draw drawFunc, lo, hi float64, rejected func()) float64 {
	if lo == hi {
		// Single-element range; no draw is consumed.
		return lo
	}
	for i := 0; ; i++ {
		if x := draw()*(hi-lo) + lo; x >= lo && x <= hi {
			return x
		}
		if rejected != nil {
			rejected()
		}
		if invariants.Enabled && i >= rejectionCap {
			panic("uniform: float range rejection sampling failed to terminate")
		}
	}
}

// sampleBytes returns n uniform bytes in draw order, each drawn
// independently from the integer range [0, 255].
func sampleBytes(draw drawFunc, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "%d bytes", n)
	}
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(sampleIntRange(draw, 0, 255))
	}
	return p, nil
}
