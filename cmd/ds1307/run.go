// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type runConfig struct {
	rootConfig *rootConfig
	out        io.Writer
}

func (c *runConfig) Exec(ctx context.Context, args []string) error {
	d, bus, err := newDev(c.rootConfig)
	if err != nil {
		return err
	}
	defer bus.Close()

	if len(args) == 0 {
		running, err := d.IsRunning()
		if err != nil {
			return err
		}
		if running {
			fmt.Fprintln(c.out, "running")
		} else {
			fmt.Fprintln(c.out, "halted")
		}
		return nil
	}

	switch args[0] {
	case "start":
		return d.SetRunning(true)
	case "stop":
		return d.SetRunning(false)
	default:
		return fmt.Errorf("unknown argument %q, expected start or stop", args[0])
	}
}

func newRunCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := runConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("ds1307 run", flag.ExitOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "run",
		ShortUsage: "run [start|stop]",
		ShortHelp:  "Report, start or stop the oscillator.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
