// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/peterbourgon/ff/v3/ffcli"
	"periph.io/x/conn/v3/physic"
)

type sqwConfig struct {
	rootConfig *rootConfig
	out        io.Writer
}

func (c *sqwConfig) Exec(ctx context.Context, args []string) error {
	d, bus, err := newDev(c.rootConfig)
	if err != nil {
		return err
	}
	defer bus.Close()

	if len(args) == 0 {
		f, err := d.SquareWave()
		if err != nil {
			return err
		}
		if f == 0 {
			fmt.Fprintln(c.out, "off")
		} else {
			fmt.Fprintln(c.out, f)
		}
		return nil
	}

	if args[0] == "off" {
		return d.SetSquareWave(0)
	}
	hz, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid frequency %q: %w", args[0], err)
	}
	return d.SetSquareWave(physic.Frequency(hz) * physic.Hertz)
}

func newSqwCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := sqwConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("ds1307 sqw", flag.ExitOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "sqw",
		ShortUsage: "sqw [off|1|4096|8192|32768]",
		ShortHelp:  "Report or set the square-wave output in Hz.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
