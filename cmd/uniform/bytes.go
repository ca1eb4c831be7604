// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bytesCmd = &cobra.Command{
	Use:   "bytes <n>",
	Short: "draw n uniform bytes and print them as hex",
	Args:  cobra.ExactArgs(1),
	RunE:  runBytes,
}

func runBytes(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	g, _, err := newGenerator()
	if err != nil {
		return err
	}
	defer func() { _ = g.Stop() }()

	p, err := g.Bytes(n)
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", p)
	return nil
}
