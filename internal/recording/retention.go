// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrBadKeep signals an invalid retention specification. It is a
// configuration error: callers abort before any network or file activity.
var ErrBadKeep = errors.New("keep must be a positive number optionally followed by d or w")

// keepRe matches a retention specification: a magnitude and an optional
// unit, days ("d", the default) or weeks ("w").
var keepRe = regexp.MustCompile(`^(\d+)([dw]?)$`)

// ComputeCutoff converts a retention specification into an absolute cutoff
// date relative to today. Recordings dated strictly before the cutoff are
// outdated. Uses calendar day arithmetic, not fractional durations.
func ComputeCutoff(keep string, today time.Time) (time.Time, error) {
	m := keepRe.FindStringSubmatch(keep)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w (got %q)", ErrBadKeep, keep)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return time.Time{}, fmt.Errorf("%w (got %q)", ErrBadKeep, keep)
	}

	days := n
	if m[2] == "w" {
		days = n * 7
	}

	// The cutoff is a calendar date; drop today's time of day so the
	// strictly-before comparison is between whole days.
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return date.AddDate(0, 0, -days), nil
}
