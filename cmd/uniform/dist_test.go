// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"testing"

	"github.com/cockroachdb/uniform"
	"github.com/stretchr/testify/require"
)

func TestParseBoundSpec(t *testing.T) {
	testCases := []struct {
		spec     string
		expected uniform.Bound
		err      bool
	}{
		{spec: "10", expected: uniform.Int(10)},
		{spec: "2.5", expected: uniform.Float(2.5)},
		{spec: "3-12", expected: uniform.IntRange(3, 12)},
		{spec: "12-3", expected: uniform.IntRange(3, 12)},
		{spec: "0.5-2.5", expected: uniform.FloatRange(0.5, 2.5)},
		{spec: "-2.5", expected: uniform.Float(-2.5)},
		{spec: "3:12", expected: uniform.IntRange(3, 12)},
		{spec: "-10:-2", expected: uniform.IntRange(-10, -2)},
		{spec: "-10--2", expected: uniform.IntRange(-10, -2)},
		{spec: "-1.5:2.25", expected: uniform.FloatRange(-1.5, 2.25)},
		{spec: "", err: true},
		{spec: "abc", err: true},
		{spec: "1-2-3", err: true},
		{spec: "--2", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.spec, func(t *testing.T) {
			b, err := parseBoundSpec(tc.spec)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, b)
		})
	}
}
