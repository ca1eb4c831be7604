// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

// Metrics holds cumulative counters for an Instance.
type Metrics struct {
	// Draws is the number of primitive seed advancements performed,
	// rejection redraws included.
	Draws int64
	// Rejections is the number of redraws forced by rejection sampling.
	Rejections int64
}
