// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import "strconv"

// Value is the result of a bounded draw: an integer or a float, with the
// kind determined by the bound that produced it.
type Value struct {
	i     int64
	f     float64
	isInt bool
}

func intValue(i int64) Value { return Value{i: i, isInt: true} }

func floatValue(f float64) Value { return Value{f: f} }

// IsInt reports whether the value is an integer.
func (v Value) IsInt() bool { return v.isInt }

// Int returns the integer value. It panics if the value is a float; use
// IsInt to discriminate when the bound kind is not statically known.
func (v Value) Int() int64 {
	if !v.isInt {
		panic("uniform: Int called on a float Value")
	}
	return v.i
}

// Float returns the value as a float. Integer values are converted.
func (v Value) Float() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}
