// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds1307 controls a Maxim DS1307 real-time clock over I²C.
//
// The DS1307 keeps calendar time in seven BCD registers backed by a coin
// cell, exposes 56 bytes of battery-backed NVRAM and can drive a square
// wave on its SQW/OUT pin. The chip has no alarms, no interrupts and no
// sub-second resolution.
//
// The two-digit year register is interpreted over the 2000–2099 window.
// Calendar values outside that window, or outside any other field's range,
// are rejected with *RangeError before any bus traffic happens.
//
// The driver performs no locking. Each call maps to one or two blocking
// I²C transactions; if the bus is shared across goroutines, serialization
// is the caller's responsibility.
//
// # Datasheet
//
// https://datasheets.maximintegrated.com/en/ds/DS1307.pdf
package ds1307
