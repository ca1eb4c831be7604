// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

type boundKind int8

const (
	boundInt boundKind = iota
	boundFloat
	boundIntRange
	boundFloatRange
)

// A Bound constrains the output domain of a bounded draw. It is either a
// scalar integer, a scalar float, or an inclusive integer or float range.
// Construct bounds with Int, Float, IntRange or FloatRange; the zero value
// of Bound behaves like Int(0).
type Bound struct {
	kind     boundKind
	n        int64
	f        float64
	lo, hi   int64
	flo, fhi float64
}

// Int returns a scalar integer bound. A draw against Int(n) with n > 0
// yields a uniform integer in [0, n). Int(0) yields 0 without consuming a
// draw, as does a negative n (a long-standing quirk of the original
// generator, kept rather than turned into an error).
func Int(n int64) Bound { return Bound{kind: boundInt, n: n} }

// Float returns a scalar float bound. A draw against Float(f) with f > 0
// yields a uniform float in [0, f). Zero and negative bounds yield 0
// without consuming a draw, mirroring Int.
func Float(f float64) Bound { return Bound{kind: boundFloat, f: f} }

// IntRange returns an inclusive integer range bound. The endpoints may be
// given in either order. A draw yields a uniform integer in
// [min(a,b), max(a,b)].
func IntRange(a, b int64) Bound {
	if a > b {
		a, b = b, a
	}
	return Bound{kind: boundIntRange, lo: a, hi: b}
}

// FloatRange returns an inclusive range bound with float endpoints, given
// in either order. If both endpoints are whole numbers the bound is
// normalized to the equivalent integer range; otherwise a draw yields a
// uniform float in [min(a,b), max(a,b)].
func FloatRange(a, b float64) Bound {
	if a > b {
		a, b = b, a
	}
	if isWhole(a) && isWhole(b) {
		return Bound{kind: boundIntRange, lo: int64(a), hi: int64(b)}
	}
	return Bound{kind: boundFloatRange, flo: a, fhi: b}
}

// isWhole reports whether f is an integer exactly representable as an
// int64. The magnitude cutoff keeps FloatRange from silently losing
// precision past 2^53.
func isWhole(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= 1<<53
}

// validate reports whether the bound is well formed. Validation happens
// before any draw is consumed, so a failed call never advances the seed.
func (b Bound) validate() error {
	switch b.kind {
	case boundFloat:
		if math.IsNaN(b.f) || math.IsInf(b.f, 0) {
			return errors.Wrapf(ErrInvalidBound, "float bound %v", b.f)
		}
	case boundIntRange:
		if width := b.hi - b.lo + 1; width <= 0 {
			return errors.Wrapf(ErrInvalidBound, "integer range [%d,%d] too wide", b.lo, b.hi)
		}
	case boundFloatRange:
		if math.IsNaN(b.flo) || math.IsInf(b.flo, 0) ||
			math.IsNaN(b.fhi) || math.IsInf(b.fhi, 0) {
			return errors.Wrapf(ErrInvalidBound, "float range [%v,%v]", b.flo, b.fhi)
		}
		// A finite range whose width overflows float64 would scale every
		// draw to +Inf, so the rejection loop could never accept.
		if math.IsInf(b.fhi-b.flo, 0) {
			return errors.Wrapf(ErrInvalidBound, "float range [%v,%v] too wide", b.flo, b.fhi)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (b Bound) String() string {
	switch b.kind {
	case boundInt:
		return fmt.Sprintf("%d", b.n)
	case boundFloat:
		return fmt.Sprintf("%g", b.f)
	case boundIntRange:
		return fmt.Sprintf("[%d,%d]", b.lo, b.hi)
	default:
		return fmt.Sprintf("[%g,%g]", b.flo, b.fhi)
	}
}
