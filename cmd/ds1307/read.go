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

type readConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	raw        bool
}

func (c *readConfig) Exec(ctx context.Context, _ []string) error {
	d, bus, err := newDev(c.rootConfig)
	if err != nil {
		return err
	}
	defer bus.Close()

	running, err := d.IsRunning()
	if err != nil {
		return err
	}
	if !running {
		fmt.Fprintln(c.out, "oscillator halted, time below is frozen")
	}

	if c.raw {
		t, err := d.ReadTime()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%04d-%02d-%02d %02d:%02d:%02d (weekday register: %d)\n",
			t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Weekday)
		return nil
	}

	now, err := d.Now()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, now.Format("2006-01-02 15:04:05"))
	return nil
}

func newReadCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := readConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("ds1307 read", flag.ExitOnError)
	fs.BoolVar(&cfg.raw, "raw", false, "print the register fields, including the stored weekday")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "read",
		ShortUsage: "read [-raw]",
		ShortHelp:  "Read the current time from the clock.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
