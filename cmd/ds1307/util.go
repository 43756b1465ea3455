// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/embedworks/ds1307"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func newDev(c *rootConfig) (*ds1307.Dev, i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	bus, err := i2creg.Open(c.bus)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open bus: %w", err)
	}
	d, err := ds1307.NewI2C(bus)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return d, bus, nil
}

func newLogger(verbose bool) *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", 0)
	}
	return log.New(io.Discard, "", 0)
}
