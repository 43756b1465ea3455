// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

// ReadNVRAM fills buf from the battery-backed RAM starting at off. The RAM
// is NVRAMSize bytes; a read past the end is rejected before any bus
// traffic.
func (d *Dev) ReadNVRAM(off int, buf []byte) error {
	if err := checkNVRAM(off, len(buf)); err != nil {
		return err
	}
	return d.readReg(regNVRAM+byte(off), buf)
}

// WriteNVRAM writes data to the battery-backed RAM starting at off, in a
// single burst.
func (d *Dev) WriteNVRAM(off int, data []byte) error {
	if err := checkNVRAM(off, len(data)); err != nil {
		return err
	}
	return d.writeReg(regNVRAM+byte(off), data)
}

func checkNVRAM(off, n int) error {
	if off < 0 || off+n > NVRAMSize {
		return &RangeError{Field: "nvram address", Value: off + n, Min: 0, Max: NVRAMSize}
	}
	return nil
}
