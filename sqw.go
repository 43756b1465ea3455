// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import "periph.io/x/conn/v3/physic"

// sqwRates maps the RS1:RS0 rate-select bits to the output frequency.
var sqwRates = [4]physic.Frequency{
	physic.Hertz,
	4096 * physic.Hertz,
	8192 * physic.Hertz,
	32768 * physic.Hertz,
}

// SquareWave returns the frequency on the SQW/OUT pin, or 0 when the
// square-wave output is disabled and the pin sits at its static level.
func (d *Dev) SquareWave() (physic.Frequency, error) {
	var ctl [1]byte
	if err := d.readReg(regControl, ctl[:]); err != nil {
		return 0, err
	}
	if ctl[0]&sqweBit == 0 {
		return 0, nil
	}
	return sqwRates[ctl[0]&rsMask], nil
}

// SetSquareWave drives the SQW/OUT pin at f. The chip supports exactly
// 1Hz, 4.096kHz, 8.192kHz and 32.768kHz; 0 disables the output, leaving
// the pin at the level set with SetOutLevel. Any other frequency is a
// *RangeError.
func (d *Dev) SetSquareWave(f physic.Frequency) error {
	rs := -1
	if f == 0 {
		rs = 0
	}
	for i, r := range sqwRates {
		if f == r {
			rs = i
		}
	}
	if rs < 0 {
		return &RangeError{
			Field: "square-wave frequency",
			Value: int(f / physic.Hertz),
			Min:   0,
			Max:   int(sqwRates[3] / physic.Hertz),
		}
	}
	var ctl [1]byte
	if err := d.readReg(regControl, ctl[:]); err != nil {
		return err
	}
	b := ctl[0] & outBit
	if f != 0 {
		b |= sqweBit | byte(rs)
	}
	return d.writeReg(regControl, []byte{b})
}

// OutLevel returns the static level of the SQW/OUT pin. It is only
// meaningful while the square wave is disabled.
func (d *Dev) OutLevel() (bool, error) {
	var ctl [1]byte
	if err := d.readReg(regControl, ctl[:]); err != nil {
		return false, err
	}
	return ctl[0]&outBit != 0, nil
}

// SetOutLevel sets the static level of the SQW/OUT pin, keeping the
// square-wave configuration untouched.
func (d *Dev) SetOutLevel(high bool) error {
	var ctl [1]byte
	if err := d.readReg(regControl, ctl[:]); err != nil {
		return err
	}
	b := ctl[0] &^ outBit
	if high {
		b |= outBit
	}
	return d.writeReg(regControl, []byte{b})
}
