// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ManuGH/bvsync/internal/config"
	xlog "github.com/ManuGH/bvsync/internal/log"
	"github.com/ManuGH/bvsync/internal/recording"
	"github.com/ManuGH/bvsync/internal/sync"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.FromArgs(args)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	level := "info"
	if cfg.Verbose {
		level = "debug"
	}
	// Interactive CLI: human-readable console output rather than the JSON
	// a log shipper would want.
	xlog.Configure(xlog.Config{
		Level:  level,
		Output: zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly},
	})
	logger := xlog.WithComponent("bvsync")
	logger.Debug().Str("version", version).Msg("starting")

	// Interrupts cancel in-flight requests; a partial download only ever
	// leaves the hidden temp file behind.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cutoff time.Time
	if cfg.Keep != "" {
		cutoff, err = recording.ComputeCutoff(cfg.Keep, time.Now())
		if err != nil {
			fmt.Println(err)
			return 1
		}
		logger.Info().
			Str(xlog.FieldEvent, "config.cutoff").
			Str(xlog.FieldCutoff, cutoff.Format(time.DateOnly)).
			Msg("recordings older than the cutoff date are removed and not downloaded")
	}

	err = sync.Run(ctx, sync.Config{
		Address:     cfg.Address,
		Destination: cfg.Destination,
		Cutoff:      cutoff,
		DryRun:      cfg.DryRun,
	})
	if err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
