// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package uniform provides seeded uniform random value generation layered
// over a small three-component congruential primitive (Wichmann-Hill
// AS 183).
//
// Two backends implement the Generator capability. The Ambient backend
// keeps its seed in the value itself with no synchronization and backs the
// package-level convenience functions; it mirrors a single-caller
// convenience API. The Instance backend owns an isolated seed behind a
// mutex and serializes concurrent callers; independently seeded instances
// never interfere with one another.
//
// The generator is not cryptographically secure. Callers that need
// unpredictable output should use crypto/rand instead.
package uniform

import "github.com/cockroachdb/errors"

var (
	// ErrStopped is returned when an operation is performed on a stopped
	// Instance.
	ErrStopped = errors.New("uniform: stopped")

	// ErrInvalidBound is returned for malformed bounds: NaN or infinite
	// scalar float bounds or range endpoints, and integer ranges too wide
	// to represent.
	ErrInvalidBound = errors.New("uniform: invalid bound")

	// ErrInvalidCount is returned when a negative count is passed to Bytes.
	ErrInvalidCount = errors.New("uniform: invalid count")
)
