// SPDX-License-Identifier: MIT

// Package config builds the process configuration from command-line
// arguments and environment variables. Precedence: flag > environment >
// built-in default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config is the process-wide configuration, constructed once at startup
// and passed by value from then on.
type Config struct {
	Address     string // dashcam IP address or host name
	Destination string // local directory recordings are synced into
	Keep        string // retention specification, empty means keep forever
	DryRun      bool
	Verbose     bool
}

// Usage printed on flag errors.
const usage = `usage: bvsync [-d DEST] [-k KEEP] [--dry-run] [--verbose] ADDRESS

Synchronizes BlackVue dashcam recordings with a local directory.

  ADDRESS                dashcam IP address or name
  -d, --destination DEST destination directory (default: current directory,
                         or BVSYNC_DESTINATION)
  -k, --keep RANGE       keep recordings in the given range, removing the
                         rest; <number>[dw], defaults to days
                         (or BVSYNC_KEEP)
  --dry-run              show what would be done without doing it
  --verbose              enable debug logging (or BVSYNC_LOG_LEVEL=debug)
`

// FromArgs parses the given command-line arguments (without the program
// name) into a Config.
func FromArgs(args []string) (Config, error) {
	cfg := Config{
		Destination: envOr("BVSYNC_DESTINATION", ""),
		Keep:        envOr("BVSYNC_KEEP", ""),
	}

	fs := flag.NewFlagSet("bvsync", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	fs.StringVar(&cfg.Destination, "d", cfg.Destination, "destination directory")
	fs.StringVar(&cfg.Destination, "destination", cfg.Destination, "destination directory")
	fs.StringVar(&cfg.Keep, "k", cfg.Keep, "retention range")
	fs.StringVar(&cfg.Keep, "keep", cfg.Keep, "retention range")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "show what would be done")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return Config{}, errors.New("exactly one ADDRESS argument is required")
	}
	cfg.Address = fs.Arg(0)

	if cfg.Destination == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("determine working directory: %w", err)
		}
		cfg.Destination = wd
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	addr := strings.TrimSpace(c.Address)
	if addr == "" {
		return errors.New("ADDRESS must not be empty")
	}
	if strings.Contains(addr, "://") || strings.Contains(addr, "/") {
		return fmt.Errorf("ADDRESS must be a host name or IP address, not a URL: %q", addr)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
