// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/uniform"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	distCount   int
	distBuckets int
)

var distCmd = &cobra.Command{
	Use:   "dist <bound>",
	Short: "draw samples against a bound and summarize the distribution",
	Long: `
Draw samples against a bound and summarize the empirical distribution.

The bound is either a scalar ("10" draws integers in [0,10), "2.5" draws
floats in [0,2.5)) or an inclusive range ("3-12", "0.5-2.5"). Endpoints
may be negative; a colon separator avoids the sign ambiguity ("-10:-2").
A range whose endpoints are both whole numbers is an integer range.
`,
	Args: cobra.ExactArgs(1),
	RunE: runDist,
}

var boundRE = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(?:[-:](-?\d+(?:\.\d+)?))?$`)

// parseBoundSpec converts a command line bound spec into a Bound.
func parseBoundSpec(spec string) (uniform.Bound, error) {
	m := boundRE.FindStringSubmatch(spec)
	if m == nil {
		return uniform.Bound{}, errors.Newf("invalid bound spec: %s", spec)
	}
	a, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return uniform.Bound{}, err
	}
	if m[2] == "" {
		if a == float64(int64(a)) {
			return uniform.Int(int64(a)), nil
		}
		return uniform.Float(a), nil
	}
	b, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return uniform.Bound{}, err
	}
	return uniform.FloatRange(a, b), nil
}

func runDist(cmd *cobra.Command, args []string) error {
	b, err := parseBoundSpec(args[0])
	if err != nil {
		return err
	}
	g, seed, err := newGenerator()
	if err != nil {
		return err
	}
	defer func() { _ = g.Stop() }()

	samples := make([]float64, distCount)
	isInt := true
	for i := range samples {
		v, err := g.Bounded(b)
		if err != nil {
			return err
		}
		samples[i] = v.Float()
		isInt = v.IsInt()
	}
	if len(samples) == 0 {
		return errors.New("no samples drawn")
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// The histogram wants non-negative integer values; shift by the
	// observed minimum and scale floats to microunits.
	scale := 1.0
	if !isInt {
		scale = 1e6
	}
	h := hdrhistogram.New(0, int64((hi-lo)*scale)+1, 3)
	for _, v := range samples {
		if err := h.RecordValue(int64((v - lo) * scale)); err != nil {
			return err
		}
	}

	fmt.Printf("bound %s  seed %s  samples %d\n\n", b, seed, len(samples))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"quantile", "value"})
	for _, q := range []float64{0, 25, 50, 75, 90, 99, 100} {
		v := float64(h.ValueAtQuantile(q))/scale + lo
		table.Append([]string{
			fmt.Sprintf("p%g", q),
			strconv.FormatFloat(v, 'g', 8, 64),
		})
	}
	table.Render()

	fmt.Printf("\n%s\n", plotBuckets(samples, lo, hi, distBuckets))
	return nil
}

// plotBuckets renders an ASCII plot of bucketed sample counts over
// [lo, hi].
func plotBuckets(samples []float64, lo, hi float64, buckets int) string {
	if buckets < 1 || hi == lo {
		buckets = 1
	}
	counts := make([]float64, buckets)
	width := (hi - lo) / float64(buckets)
	for _, v := range samples {
		i := buckets - 1
		if width > 0 {
			if j := int((v - lo) / width); j < i {
				i = j
			}
		}
		counts[i]++
	}
	return asciigraph.Plot(counts, asciigraph.Height(10))
}
