// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import "fmt"

// RangeError is returned when a caller-supplied value cannot be encoded by
// the chip: a calendar field outside its valid range, an NVRAM access past
// the end of the RAM, or an unsupported square-wave rate.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ds1307: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// TransportError is returned when an I²C exchange with the chip fails: no
// acknowledgment, a bus timeout, or a short response. It wraps the error
// reported by the bus.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ds1307: %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
