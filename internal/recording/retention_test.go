// SPDX-License-Identifier: MIT
package recording

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCutoff(t *testing.T) {
	today := time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		keep string
		want time.Time
	}{
		{"7", time.Date(2023, 6, 8, 0, 0, 0, 0, time.Local)},
		{"7d", time.Date(2023, 6, 8, 0, 0, 0, 0, time.Local)},
		{"2w", time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local)},
		{"1", time.Date(2023, 6, 14, 0, 0, 0, 0, time.Local)},
		{"30", time.Date(2023, 5, 16, 0, 0, 0, 0, time.Local)},
		{"1w", time.Date(2023, 6, 8, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.keep, func(t *testing.T) {
			got, err := ComputeCutoff(tt.keep, today)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "cutoff %v != %v", got, tt.want)
		})
	}
}

func TestComputeCutoff_DropsTimeOfDay(t *testing.T) {
	today := time.Date(2023, 6, 15, 18, 42, 7, 0, time.Local)

	got, err := ComputeCutoff("7", today)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2023, 6, 8, 0, 0, 0, 0, time.Local)))
}

func TestComputeCutoff_Invalid(t *testing.T) {
	today := time.Date(2023, 6, 15, 0, 0, 0, 0, time.Local)

	for _, keep := range []string{"0", "0w", "abc", "", "5x", "-3", "3.5", "d", "7 d"} {
		t.Run(keep, func(t *testing.T) {
			_, err := ComputeCutoff(keep, today)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadKeep)
		})
	}
}
