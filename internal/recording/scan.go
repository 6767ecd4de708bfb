// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"os"
	"time"
)

// ScanDir lists the directory (non-recursive) and returns the entries whose
// names parse as recordings. Everything else, including hidden in-progress
// downloads and .gps/.3gf sidecars, is dropped. Names that match the
// convention but encode an impossible date are dropped too: whatever that
// file is, it is not a recording we can reason about.
func ScanDir(dir string) ([]Recording, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	recs := make([]Recording, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rec, ok, err := Parse(e.Name())
		if err != nil || !ok {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Outdated returns the recordings dated strictly before the cutoff. A zero
// cutoff means no retention window: nothing is outdated.
func Outdated(recs []Recording, cutoff time.Time) []Recording {
	if cutoff.IsZero() {
		return nil
	}
	var out []Recording
	for _, r := range recs {
		if r.Date().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// Current returns the recordings dated on or after the cutoff, preserving
// order. A zero cutoff keeps everything.
func Current(recs []Recording, cutoff time.Time) []Recording {
	if cutoff.IsZero() {
		return recs
	}
	out := make([]Recording, 0, len(recs))
	for _, r := range recs {
		if !r.Date().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}
