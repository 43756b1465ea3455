// Copyright 2025 The Embedworks Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1307

import "time"

// centuryBase anchors the chip's two-digit year register. The DS1307 stores
// 00..99; every value is interpreted as centuryBase+value.
const centuryBase = 2000

// Time is a calendar value laid out the way the DS1307 stores it. Unlike
// time.Time it carries the weekday as an independent field: the chip's
// day-of-week register is a plain counter that the caller defines, it is
// never derived from the date by the hardware.
type Time struct {
	Year    int          // 2000..2099
	Month   time.Month   // 1..12
	Day     int          // 1..31, not checked against the month
	Weekday time.Weekday // 0..6, 0 is Sunday, stored verbatim
	Hour    int          // 0..23
	Minute  int          // 0..59
	Second  int          // 0..59
}

// FromTime converts a time.Time to a Time, rounding to the nearest second
// and deriving the weekday from the date. The wall-clock fields are taken
// as-is; the chip has no notion of a time zone.
func FromTime(t time.Time) Time {
	if t.Nanosecond() >= int(time.Second)/2 {
		t = t.Add(time.Second)
	}
	return Time{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// Time converts to a time.Time in UTC. The Weekday field is dropped;
// time.Time computes its own weekday from the date.
func (t Time) Time() time.Time {
	return time.Date(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

func (t Time) validate() error {
	checks := []struct {
		field    string
		v        int
		min, max int
	}{
		{"year", t.Year, centuryBase, centuryBase + 99},
		{"month", int(t.Month), 1, 12},
		{"day", t.Day, 1, 31},
		{"weekday", int(t.Weekday), 0, 6},
		{"hour", t.Hour, 0, 23},
		{"minute", t.Minute, 0, 59},
		{"second", t.Second, 0, 59},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			return &RangeError{Field: c.field, Value: c.v, Min: c.min, Max: c.max}
		}
	}
	return nil
}

// encodeTime packs t into the chip's seven timekeeping registers. The halt
// bit in the seconds byte is set when running is false.
func encodeTime(t Time, running bool) ([7]byte, error) {
	var buf [7]byte
	if err := t.validate(); err != nil {
		return buf, err
	}
	buf[0] = decToBCD(t.Second)
	if !running {
		buf[0] |= haltBit
	}
	buf[1] = decToBCD(t.Minute)
	buf[2] = decToBCD(t.Hour)
	buf[3] = decToBCD(int(t.Weekday))
	buf[4] = decToBCD(t.Day)
	buf[5] = decToBCD(int(t.Month))
	buf[6] = decToBCD(t.Year - centuryBase)
	return buf, nil
}

// decodeTime unpacks the seven timekeeping registers. Flag bits (halt,
// 12-hour select) are masked out before the BCD conversion.
func decodeTime(buf *[7]byte) Time {
	return Time{
		Second:  bcdToDec(buf[0] &^ haltBit),
		Minute:  bcdToDec(buf[1] & 0x7F),
		Hour:    bcdToDec(buf[2] & 0x3F),
		Weekday: time.Weekday(bcdToDec(buf[3] & 0x07)),
		Day:     bcdToDec(buf[4] & 0x3F),
		Month:   time.Month(bcdToDec(buf[5] & 0x1F)),
		Year:    bcdToDec(buf[6]) + centuryBase,
	}
}

func decToBCD(v int) byte {
	return byte(v + 6*(v/10))
}

func bcdToDec(v byte) int {
	return int(v - 6*(v>>4))
}
