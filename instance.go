// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package uniform

import (
	"sync"

	"github.com/cockroachdb/uniform/internal/invariants"
	"github.com/prometheus/client_golang/prometheus"
)

// Instance is the isolated backend: a generator that exclusively owns its
// seed state behind an opaque handle. Instances never share state; a draw
// on one instance cannot perturb another. Concurrent callers on the same
// instance serialize: each draw advances the seed entirely before the
// next begins, so the combined output is some interleaving of the
// sequential stream from the same seed.
//
// An Instance must be stopped with Stop once it is no longer needed.
// Stopping is a one-way transition; operations on a stopped instance
// return ErrStopped. In invariants builds a finalizer checks that
// instances are stopped before becoming unreachable; the finalizer is a
// leak diagnostic, not a substitute for Stop.
type Instance struct {
	opts Options
	mu   struct {
		sync.Mutex
		seed    Seed
		stopped bool
		metrics Metrics
	}
}

var _ Generator = (*Instance)(nil)

// Options tunes an Instance. The zero value is a valid configuration.
type Options struct {
	// RejectionRetries, if non-nil, is incremented once for every redraw
	// performed by the rejection sampling paths (float bounds and float
	// ranges).
	RejectionRetries prometheus.Counter
}

// New returns a running Instance owning an independent copy of seed. opts
// may be nil. Fresh instances are typically seeded via NewSeed:
//
//	g := uniform.New(uniform.NewSeed(), nil)
//	defer func() { _ = g.Stop() }()
func New(seed Seed, opts *Options) *Instance {
	i := &Instance{}
	if opts != nil {
		i.opts = *opts
	}
	i.mu.seed = seed
	invariants.SetFinalizer(i, func(i *Instance) {
		i.mu.Lock()
		defer i.mu.Unlock()
		if !i.mu.stopped {
			panic("uniform: Instance became unreachable without Stop")
		}
	})
	return i
}

// Stop terminates the instance. Draws issued after Stop fail with
// ErrStopped, as does stopping twice.
func (i *Instance) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.mu.stopped {
		return ErrStopped
	}
	i.mu.stopped = true
	return nil
}

// Unit implements Generator.
func (i *Instance) Unit() (float64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.mu.stopped {
		return 0, ErrStopped
	}
	return i.drawLocked(), nil
}

// Bounded implements Generator. The entire bounded operation, rejection
// redraws included, runs under the instance lock.
func (i *Instance) Bounded(b Bound) (Value, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.mu.stopped {
		return Value{}, ErrStopped
	}
	return sampleBounded(i.drawLocked, b, i.rejectedLocked)
}

// Bytes implements Generator.
func (i *Instance) Bytes(n int) ([]byte, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.mu.stopped {
		return nil, ErrStopped
	}
	return sampleBytes(i.drawLocked, n)
}

// Metrics returns a snapshot of the instance's counters. It remains
// usable after Stop.
func (i *Instance) Metrics() Metrics {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.mu.metrics
}

// drawLocked is the drawFunc handed to the sampler layer. The instance
// lock must be held.
func (i *Instance) drawLocked() float64 {
	i.mu.metrics.Draws++
	return i.mu.seed.next()
}

// rejectedLocked records one rejection sampling redraw. The instance lock
// must be held.
func (i *Instance) rejectedLocked() {
	i.mu.metrics.Rejections++
	if c := i.opts.RejectionRetries; c != nil {
		c.Inc()
	}
}
