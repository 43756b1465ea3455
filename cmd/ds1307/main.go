// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

/*
ds1307 reads and sets a DS1307 real-time clock on an I²C bus.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	out := os.Stdout

	rootCmd, cfg := newRootCmd()
	rootCmd.Subcommands = []*ffcli.Command{
		newReadCmd(cfg, out),
		newSetCmd(cfg, out),
		newRunCmd(cfg, out),
		newSqwCmd(cfg, out),
		newNVRAMCmd(cfg, out),
	}

	if err := rootCmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", rootCmd.Name, err)
		os.Exit(1)
	}
}
