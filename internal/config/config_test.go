// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs(t *testing.T) {
	cfg, err := FromArgs([]string{"-d", "/data/dashcam", "-k", "2w", "--dry-run", "10.0.0.1"})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Address)
	assert.Equal(t, "/data/dashcam", cfg.Destination)
	assert.Equal(t, "2w", cfg.Keep)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
}

func TestFromArgs_LongFlags(t *testing.T) {
	cfg, err := FromArgs([]string{"--destination", "/data", "--keep", "7", "--verbose", "dashcam.local"})
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.Destination)
	assert.Equal(t, "7", cfg.Keep)
	assert.True(t, cfg.Verbose)
}

func TestFromArgs_DefaultDestinationIsCwd(t *testing.T) {
	cfg, err := FromArgs([]string{"10.0.0.1"})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.Destination)
	assert.Empty(t, cfg.Keep)
}

func TestFromArgs_EnvDefaults(t *testing.T) {
	t.Setenv("BVSYNC_DESTINATION", "/env/dest")
	t.Setenv("BVSYNC_KEEP", "4w")

	cfg, err := FromArgs([]string{"10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "/env/dest", cfg.Destination)
	assert.Equal(t, "4w", cfg.Keep)
}

func TestFromArgs_FlagBeatsEnv(t *testing.T) {
	t.Setenv("BVSYNC_DESTINATION", "/env/dest")

	cfg, err := FromArgs([]string{"-d", "/flag/dest", "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "/flag/dest", cfg.Destination)
}

func TestFromArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no address", []string{}},
		{"two addresses", []string{"10.0.0.1", "10.0.0.2"}},
		{"url instead of host", []string{"http://10.0.0.1"}},
		{"path in address", []string{"10.0.0.1/blackvue"}},
		{"unknown flag", []string{"--bogus", "10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArgs(tt.args)
			assert.Error(t, err)
		})
	}
}
