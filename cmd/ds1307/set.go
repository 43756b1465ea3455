// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type setConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	when       string
}

func (c *setConfig) Exec(ctx context.Context, _ []string) error {
	t := time.Now()
	if c.when != "" {
		var err error
		t, err = time.Parse(time.RFC3339, c.when)
		if err != nil {
			return fmt.Errorf("invalid -time value: %w", err)
		}
	}

	d, bus, err := newDev(c.rootConfig)
	if err != nil {
		return err
	}
	defer bus.Close()

	logger := newLogger(c.rootConfig.verbose)
	logger.Printf("setting clock to %s", t.Format("2006-01-02 15:04:05"))

	if err := d.Set(t); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "clock set and running")
	return nil
}

func newSetCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := setConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("ds1307 set", flag.ExitOnError)
	fs.StringVar(&cfg.when, "time", "", "RFC 3339 time to set, default is the system clock")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "set",
		ShortUsage: "set [-time 2016-11-18T09:36:36Z]",
		ShortHelp:  "Set the clock and start the oscillator.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
