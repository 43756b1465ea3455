// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type rootConfig struct {
	verbose bool
	bus     string
}

func (c *rootConfig) registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "increase log verbosity")
	fs.StringVar(&c.bus, "bus", "", "I²C bus name or number, empty for the first available")
}

func (c *rootConfig) Exec(context.Context, []string) error {
	return flag.ErrHelp
}

func newRootCmd() (*ffcli.Command, *rootConfig) {
	var cfg rootConfig

	fs := flag.NewFlagSet("ds1307", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "ds1307",
		ShortUsage: "ds1307 [flags] <subcommand>",
		ShortHelp:  "Read and set a DS1307 real-time clock.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}, &cfg
}
