// SPDX-License-Identifier: MIT

// Package recording models dashcam recordings and the filename convention
// they are identified by.
package recording

import (
	"fmt"
	"regexp"
	"time"
)

// Type classifies how a recording was triggered.
type Type string

const (
	Normal  Type = "N"
	Event   Type = "E"
	Parking Type = "P"
	Manual  Type = "M"
)

func (t Type) String() string {
	switch t {
	case Normal:
		return "normal"
	case Event:
		return "event"
	case Parking:
		return "parking"
	case Manual:
		return "manual"
	}
	return string(t)
}

// Direction identifies the camera that produced a recording.
type Direction string

const (
	Front Direction = "F"
	Rear  Direction = "R"
)

func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Rear:
		return "rear"
	}
	return string(d)
}

// Recording is the metadata carried by a recording filename. It is a value
// type; construct it via Parse only.
type Recording struct {
	Filename  string
	Timestamp time.Time
	Type      Type
	Direction Direction
	Extension string
}

// filenameRe matches the canonical recording filename,
// e.g. 20230615_142233_NF.mp4. Sidecar files (.gps/.3gf) and hidden
// in-progress downloads intentionally do not match.
var filenameRe = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})_([NEPM])([FR])\.(\w+)$`)

// Parse extracts recording metadata from a filename. A filename that does
// not follow the convention yields ok=false with a nil error; a filename
// that follows the convention but encodes an impossible calendar date or
// time yields an error.
func Parse(filename string) (Recording, bool, error) {
	m := filenameRe.FindStringSubmatch(filename)
	if m == nil {
		return Recording{}, false, nil
	}

	ts, err := parseTimestamp(m[1], m[2], m[3], m[4], m[5], m[6])
	if err != nil {
		return Recording{}, false, fmt.Errorf("recording %q: %w", filename, err)
	}

	return Recording{
		Filename:  filename,
		Timestamp: ts,
		Type:      Type(m[7]),
		Direction: Direction(m[8]),
		Extension: m[9],
	}, true, nil
}

func parseTimestamp(year, month, day, hour, minute, second string) (time.Time, error) {
	// Dashcam clocks run in local time; keep timestamps in the same
	// location the cutoff date is computed in.
	ts, err := time.ParseInLocation("20060102_150405", year+month+day+"_"+hour+minute+second, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %s%s%s_%s%s%s", year, month, day, hour, minute, second)
	}
	return ts, nil
}

// Date returns the calendar day of the recording, with the time of day
// truncated.
func (r Recording) Date() time.Time {
	return time.Date(r.Timestamp.Year(), r.Timestamp.Month(), r.Timestamp.Day(), 0, 0, 0, 0, r.Timestamp.Location())
}
