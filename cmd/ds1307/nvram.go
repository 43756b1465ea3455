// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/embedworks/ds1307"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type nvramConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	offset     int
}

func (c *nvramConfig) Exec(ctx context.Context, args []string) error {
	d, bus, err := newDev(c.rootConfig)
	if err != nil {
		return err
	}
	defer bus.Close()

	if c.offset < 0 || c.offset >= ds1307.NVRAMSize {
		return fmt.Errorf("offset %d outside the %d-byte RAM", c.offset, ds1307.NVRAMSize)
	}

	if len(args) == 0 {
		buf := make([]byte, ds1307.NVRAMSize-c.offset)
		if err := d.ReadNVRAM(c.offset, buf); err != nil {
			return err
		}
		fmt.Fprint(c.out, hex.Dump(buf))
		return nil
	}

	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex data: %w", err)
	}
	return d.WriteNVRAM(c.offset, data)
}

func newNVRAMCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := nvramConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("ds1307 nvram", flag.ExitOnError)
	fs.IntVar(&cfg.offset, "offset", 0, "byte offset into the "+strconv.Itoa(ds1307.NVRAMSize)+"-byte RAM")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "nvram",
		ShortUsage: "nvram [-offset n] [hexdata]",
		ShortHelp:  "Dump the battery-backed RAM, or write hex bytes to it.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
