// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package invariants

import (
	"runtime"

	"github.com/cockroachdb/uniform/internal/buildtags"
)

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race

// UseFinalizers is true if we want to use finalizers for assertions
// around object lifetime and cleanup. This happens when the invariants or
// tracing tags are set, but we exclude race builds because we
// historically ran into some finalizer-related race detector bugs.
const UseFinalizers = !RaceEnabled && (Enabled || buildtags.Tracing)

// SetFinalizer is a wrapper around runtime.SetFinalizer that is a no-op
// under race builds or if neither the invariants nor tracing build tags
// are specified.
func SetFinalizer(obj, finalizer interface{}) {
	if UseFinalizers {
		runtime.SetFinalizer(obj, finalizer)
	}
}
