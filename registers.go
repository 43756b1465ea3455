// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

// Addr is the fixed 7-bit I²C address of the DS1307. The chip has no
// address pins, so only one can sit on a bus.
const Addr uint16 = 0x68

// NVRAMSize is the number of battery-backed RAM bytes available behind the
// timekeeping registers.
const NVRAMSize = 56

const (
	regSeconds byte = 0x00
	regMinutes byte = 0x01
	regHours   byte = 0x02
	regWeekday byte = 0x03
	regDay     byte = 0x04
	regMonth   byte = 0x05
	regYear    byte = 0x06
	regControl byte = 0x07
	regNVRAM   byte = 0x08
)

const (
	// CH bit in the seconds register. When set the oscillator is halted
	// and the clock does not advance.
	haltBit byte = 1 << 7

	// 12-hour mode select in the hours register. The driver always runs
	// the chip in 24-hour mode.
	mode12Bit byte = 1 << 6

	// Control register bits.
	outBit  byte = 1 << 7 // SQW/OUT level while the square wave is disabled
	sqweBit byte = 1 << 4 // square-wave output enable
	rsMask  byte = 0x03   // RS1:RS0 rate select
)
