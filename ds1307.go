// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Dev represents a DS1307 on an I²C bus. It holds no state between calls;
// every operation goes to the chip.
type Dev struct {
	d *i2c.Dev
}

// NewI2C returns a handle to a DS1307 on the given bus. The chip's address
// is fixed at 0x68.
func NewI2C(b i2c.Bus) (*Dev, error) {
	return &Dev{d: &i2c.Dev{Bus: b, Addr: Addr}}, nil
}

// ReadTime reads the seven timekeeping registers in one transaction and
// returns the decoded calendar value. The weekday is the chip's stored
// field, not recomputed from the date.
func (d *Dev) ReadTime() (Time, error) {
	var buf [7]byte
	if err := d.readReg(regSeconds, buf[:]); err != nil {
		return Time{}, err
	}
	return decodeTime(&buf), nil
}

// WriteTime sets the clock to t, preserving the current oscillator run
// state. All seven registers are written in a single burst so a rollover
// cannot interleave with the write.
func (d *Dev) WriteTime(t Time) error {
	if err := t.validate(); err != nil {
		return err
	}
	var sec [1]byte
	if err := d.readReg(regSeconds, sec[:]); err != nil {
		return err
	}
	return d.writeTime(t, sec[0]&haltBit == 0)
}

// Now reads the clock and returns it as a time.Time in UTC.
func (d *Dev) Now() (time.Time, error) {
	t, err := d.ReadTime()
	if err != nil {
		return time.Time{}, err
	}
	return t.Time(), nil
}

// Set sets the clock to t, rounded to the nearest second, and starts the
// oscillator. The weekday register is derived from the date. A chip coming
// out of its factory or battery-drained state is halted until the first
// Set or SetRunning(true).
func (d *Dev) Set(t time.Time) error {
	return d.writeTime(FromTime(t), true)
}

// IsRunning reports whether the oscillator is running.
func (d *Dev) IsRunning() (bool, error) {
	var sec [1]byte
	if err := d.readReg(regSeconds, sec[:]); err != nil {
		return false, err
	}
	return sec[0]&haltBit == 0, nil
}

// SetRunning starts or halts the oscillator. Only the halt bit of the
// seconds register is touched; the stored second and every other register
// keep their value. A halted chip keeps time registers and NVRAM on
// battery, it just stops counting.
func (d *Dev) SetRunning(running bool) error {
	var sec [1]byte
	if err := d.readReg(regSeconds, sec[:]); err != nil {
		return err
	}
	b := sec[0] &^ haltBit
	if !running {
		b |= haltBit
	}
	return d.writeReg(regSeconds, []byte{b})
}

// Halt implements conn.Resource. It does not stop the oscillator; use
// SetRunning(false) for that.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ds1307: %s", d.d)
}

func (d *Dev) writeTime(t Time, running bool) error {
	buf, err := encodeTime(t, running)
	if err != nil {
		return err
	}
	return d.writeReg(regSeconds, buf[:])
}

func (d *Dev) readReg(reg byte, buf []byte) error {
	if err := d.d.Tx([]byte{reg}, buf); err != nil {
		return &TransportError{Op: "read", Err: err}
	}
	return nil
}

func (d *Dev) writeReg(reg byte, data []byte) error {
	w := make([]byte, 1+len(data))
	w[0] = reg
	copy(w[1:], data)
	if err := d.d.Tx(w, nil); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}

var _ conn.Resource = &Dev{}
