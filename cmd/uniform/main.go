// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/uniform"
	"github.com/spf13/cobra"
)

var seedSpec string

var rootCmd = &cobra.Command{
	Use:   "uniform [command] (flags)",
	Short: "uniform draw/distribution inspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		distCmd,
		bytesCmd,
	)

	for _, cmd := range []*cobra.Command{distCmd, bytesCmd} {
		cmd.Flags().StringVarP(
			&seedSpec, "seed", "s", "",
			"seed triple a,b,c (default: derive a fresh seed)")
	}

	distCmd.Flags().IntVarP(
		&distCount, "count", "n", 100000, "number of samples to draw")
	distCmd.Flags().IntVar(
		&distBuckets, "buckets", 20, "number of histogram buckets to plot")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// newGenerator builds an instance from --seed, or from a freshly derived
// seed when the flag is empty.
func newGenerator() (*uniform.Instance, uniform.Seed, error) {
	if seedSpec == "" {
		s := uniform.NewSeed()
		return uniform.New(s, nil), s, nil
	}
	parts := strings.Split(seedSpec, ",")
	if len(parts) != 3 {
		return nil, uniform.Seed{}, errors.Newf("invalid seed spec: %s", seedSpec)
	}
	var c [3]int64
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, uniform.Seed{}, errors.Wrapf(err, "invalid seed spec: %s", seedSpec)
		}
		c[i] = v
	}
	s := uniform.MakeSeed(c[0], c[1], c[2])
	return uniform.New(s, nil), s, nil
}
