// SPDX-License-Identifier: MIT
package blackvue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseListing(t *testing.T) {
	body := "v:1.00\r\n" +
		"n:/Record/20230101_000000_NF.mp4,s:1000000\r\n" +
		"n:/Record/20230101_000000_NR.mp4,s:952133\r\n" +
		"n:/Record/20230102_081545_EF.mp4,s:104857600\r\n"

	got := parseListing(body)
	want := []string{
		"20230101_000000_NF.mp4",
		"20230101_000000_NR.mp4",
		"20230102_081545_EF.mp4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListing_SkipsStrayLines(t *testing.T) {
	body := "v:1.00\r\n" +
		"garbage\r\n" +
		"n:/Record/20230101_000000_NF.mp4,s:1000000\r\n" +
		"n:/Record/nosize.mp4\r\n" +
		"\r\n"

	assert.Equal(t, []string{"20230101_000000_NF.mp4"}, parseListing(body))
}

func TestParseListing_Empty(t *testing.T) {
	assert.Empty(t, parseListing("v:1.00\r\n"))
	assert.Empty(t, parseListing(""))
}

func TestParseListing_NoCRLF(t *testing.T) {
	// Some firmware revisions terminate lines with bare LF.
	body := "v:1.00\nn:/Record/20230101_000000_NF.mp4,s:1000000\n"
	assert.Equal(t, []string{"20230101_000000_NF.mp4"}, parseListing(body))
}
