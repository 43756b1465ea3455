// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import (
	"errors"
	"testing"
	"time"
)

func TestEncodeTime(t *testing.T) {
	// 2016-11-18 09:36:36, caller-defined weekday 6.
	in := Time{
		Year:    2016,
		Month:   time.November,
		Day:     18,
		Weekday: time.Saturday,
		Hour:    9,
		Minute:  36,
		Second:  36,
	}
	buf, err := encodeTime(in, true)
	if err != nil {
		t.Fatal(err)
	}
	expected := [7]byte{0x36, 0x36, 0x09, 0x06, 0x18, 0x11, 0x16}
	if buf != expected {
		t.Fatalf("encoded %#v, expected %#v", buf, expected)
	}

	buf, err = encodeTime(in, false)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0x36|haltBit {
		t.Fatalf("halted seconds byte 0x%02x, expected 0x%02x", buf[0], 0x36|haltBit)
	}
	for i := 1; i < 7; i++ {
		if buf[i] != expected[i] {
			t.Fatalf("halt state leaked into register %d: 0x%02x", i, buf[i])
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	times := []Time{
		{2000, time.January, 1, time.Saturday, 0, 0, 0},
		{2016, time.November, 18, time.Friday, 9, 36, 36},
		{2038, time.January, 19, time.Tuesday, 3, 14, 8},
		{2099, time.December, 31, time.Thursday, 23, 59, 59},
	}
	for _, in := range times {
		for _, running := range []bool{true, false} {
			buf, err := encodeTime(in, running)
			if err != nil {
				t.Fatalf("%v: %v", in, err)
			}
			if got := buf[0]&haltBit == 0; got != running {
				t.Fatalf("%v: running %t, expected %t", in, got, running)
			}
			if out := decodeTime(&buf); out != in {
				t.Fatalf("round trip %v -> %v", in, out)
			}
		}
	}
}

func TestEncodeTimeRange(t *testing.T) {
	valid := Time{2016, time.November, 18, time.Friday, 9, 36, 36}
	tests := []struct {
		field  string
		mutate func(*Time)
	}{
		{"year", func(t *Time) { t.Year = 1999 }},
		{"year", func(t *Time) { t.Year = 2100 }},
		{"month", func(t *Time) { t.Month = 0 }},
		{"month", func(t *Time) { t.Month = 13 }},
		{"day", func(t *Time) { t.Day = 0 }},
		{"day", func(t *Time) { t.Day = 32 }},
		{"weekday", func(t *Time) { t.Weekday = 7 }},
		{"hour", func(t *Time) { t.Hour = 24 }},
		{"minute", func(t *Time) { t.Minute = 60 }},
		{"second", func(t *Time) { t.Second = 60 }},
	}
	for _, test := range tests {
		in := valid
		test.mutate(&in)
		_, err := encodeTime(in, true)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("%v: expected *RangeError, got %v", in, err)
		}
		if re.Field != test.field {
			t.Fatalf("%v: field %q, expected %q", in, re.Field, test.field)
		}
	}
}

// The century window is 2000..2099; both edges must encode.
func TestEncodeTimeCenturyEdges(t *testing.T) {
	for _, year := range []int{2000, 2099} {
		in := Time{year, time.June, 15, time.Monday, 12, 0, 0}
		buf, err := encodeTime(in, true)
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
		if want := decToBCD(year - 2000); buf[6] != want {
			t.Fatalf("year %d encoded as 0x%02x, expected 0x%02x", year, buf[6], want)
		}
	}
}

func TestDecodeTimeMasksFlags(t *testing.T) {
	// Halt bit set in seconds, 12-hour flag set in hours.
	buf := [7]byte{0x36 | haltBit, 0x36, 0x09 | mode12Bit, 0x06, 0x18, 0x11, 0x16}
	out := decodeTime(&buf)
	expected := Time{2016, time.November, 18, time.Saturday, 9, 36, 36}
	if out != expected {
		t.Fatalf("decoded %v, expected %v", out, expected)
	}
}

func TestFromTime(t *testing.T) {
	// 2016-11-18 was a Friday; the weekday is derived, not caller input.
	in := time.Date(2016, time.November, 18, 9, 36, 36, 0, time.UTC)
	out := FromTime(in)
	expected := Time{2016, time.November, 18, time.Friday, 9, 36, 36}
	if out != expected {
		t.Fatalf("FromTime(%v) = %v, expected %v", in, out, expected)
	}

	// Rounds to the nearest second.
	out = FromTime(in.Add(600 * time.Millisecond))
	expected.Second = 37
	if out != expected {
		t.Fatalf("rounding: got %v, expected %v", out, expected)
	}
}

func TestTimeTime(t *testing.T) {
	in := Time{2016, time.November, 18, time.Saturday, 9, 36, 36}
	out := in.Time()
	if expected := time.Date(2016, time.November, 18, 9, 36, 36, 0, time.UTC); !out.Equal(expected) {
		t.Fatalf("Time() = %v, expected %v", out, expected)
	}
}

func TestBCD(t *testing.T) {
	for v := 0; v < 100; v++ {
		b := decToBCD(v)
		if expected := byte(v/10<<4 | v%10); b != expected {
			t.Fatalf("decToBCD(%d) = 0x%02x, expected 0x%02x", v, b, expected)
		}
		if got := bcdToDec(b); got != v {
			t.Fatalf("bcdToDec(0x%02x) = %d, expected %d", b, got, v)
		}
	}
}
