// SPDX-License-Identifier: MIT

// Package sync reconciles the dashcam's recordings with a local directory:
// it prunes outdated local files, then downloads every current remote
// recording that is not already present.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ManuGH/bvsync/internal/blackvue"
	xlog "github.com/ManuGH/bvsync/internal/log"
	"github.com/ManuGH/bvsync/internal/recording"
)

var (
	// ErrNotDirectory signals that the destination exists but is not a
	// directory. Configuration error, raised before any network activity.
	ErrNotDirectory = errors.New("destination exists but is not a directory")
	// ErrNotWritable signals that the destination directory cannot be
	// written to.
	ErrNotWritable = errors.New("destination directory is not writable")
)

// Device is the dashcam surface the orchestrator needs. *blackvue.Client
// satisfies it; tests inject fakes.
type Device interface {
	List(ctx context.Context) ([]string, error)
	Download(ctx context.Context, filename string, w io.Writer) error
}

// Config holds one sync run's settings, established once at startup and
// never mutated afterwards.
type Config struct {
	Address     string
	Destination string
	Cutoff      time.Time // zero means no retention window
	DryRun      bool
}

// Run synchronizes the dashcam at cfg.Address with cfg.Destination. It
// processes recordings strictly sequentially, in listing order, and aborts
// on the first download failure.
func Run(ctx context.Context, cfg Config) error {
	return RunWithDevice(ctx, cfg, blackvue.New(cfg.Address))
}

// RunWithDevice is Run with an injectable device client.
func RunWithDevice(ctx context.Context, cfg Config, dev Device) error {
	logger := xlog.WithComponentFromContext(ctx, "sync")
	logger.Info().
		Str(xlog.FieldEvent, "sync.start").
		Str(xlog.FieldDest, cfg.Destination).
		Bool(xlog.FieldDryRun, cfg.DryRun).
		Msg("starting sync")

	if err := prepareDestination(cfg.Destination); err != nil {
		return err
	}

	pruned, err := prune(ctx, cfg)
	if err != nil {
		return err
	}

	names, err := dev.List(ctx)
	if err != nil {
		return err
	}

	remote := make([]recording.Recording, 0, len(names))
	for _, name := range names {
		rec, ok, err := recording.Parse(name)
		if !ok || err != nil {
			// The device listed something we cannot interpret. One odd
			// entry must not block the rest of the sync.
			logger.Warn().
				Str(xlog.FieldEvent, "list.unparseable").
				Str(xlog.FieldFilename, name).
				Msg("skipping unparseable remote filename")
			continue
		}
		remote = append(remote, rec)
	}

	downloaded, skipped := 0, 0
	for _, rec := range recording.Current(remote, cfg.Cutoff) {
		d, s, err := downloadRecording(ctx, cfg, dev, rec)
		if err != nil {
			return err
		}
		downloaded += d
		skipped += s
	}

	logger.Info().
		Str(xlog.FieldEvent, "sync.success").
		Int("downloaded", downloaded).
		Int("skipped", skipped).
		Int("pruned", pruned).
		Msg("sync completed")
	return nil
}

// prepareDestination creates the destination if missing and verifies it is
// a writable directory otherwise.
func prepareDestination(dest string) error {
	info, err := os.Stat(dest)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return fmt.Errorf("create destination: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat destination: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dest)
	}

	// Probe writability by creating and removing a hidden marker; checking
	// permission bits would miss read-only mounts.
	probe := filepath.Join(dest, ".bvsync-probe")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, dest)
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return nil
}

// prune removes local recordings dated strictly before the cutoff.
// Best-effort: every outdated file gets a deletion attempt, failures are
// collected and returned after the pass.
func prune(ctx context.Context, cfg Config) (int, error) {
	if cfg.Cutoff.IsZero() {
		return 0, nil
	}
	logger := xlog.WithComponentFromContext(ctx, "sync")

	local, err := recording.ScanDir(cfg.Destination)
	if err != nil {
		return 0, err
	}

	pruned := 0
	var errs []error
	for _, rec := range recording.Outdated(local, cfg.Cutoff) {
		path := filepath.Join(cfg.Destination, rec.Filename)
		if cfg.DryRun {
			logger.Info().
				Str(xlog.FieldEvent, "prune.would_remove").
				Str(xlog.FieldPath, path).
				Msg("dry run: would remove outdated recording")
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.Error().
				Err(err).
				Str(xlog.FieldEvent, "prune.failed").
				Str(xlog.FieldPath, path).
				Msg("failed to remove outdated recording")
			errs = append(errs, fmt.Errorf("prune %s: %w", path, err))
			continue
		}
		pruned++
		logger.Info().
			Str(xlog.FieldEvent, "prune.removed").
			Str(xlog.FieldPath, path).
			Msg("removed outdated recording")
	}
	return pruned, errors.Join(errs...)
}

// downloadRecording downloads the recording and, for front-facing normal
// recordings, its GPS and accelerometer sidecars. Returns how many files
// were downloaded and how many already existed.
func downloadRecording(ctx context.Context, cfg Config, dev Device, rec recording.Recording) (downloaded, skipped int, err error) {
	names := []string{rec.Filename}

	// Only front-facing normal recordings carry sidecar data.
	if base, ok := strings.CutSuffix(rec.Filename, "_NF.mp4"); ok {
		names = append(names, base+"_N.gps", base+"_N.3gf")
	}

	for _, name := range names {
		did, err := downloadFile(ctx, cfg, dev, name)
		if err != nil {
			return downloaded, skipped, err
		}
		if did {
			downloaded++
		} else {
			skipped++
		}
	}
	return downloaded, skipped, nil
}

// downloadFile fetches one file into the destination unless it is already
// there. The body is written to a hidden temp path first and renamed into
// place on success, so a crash mid-download never leaves a file that looks
// complete.
func downloadFile(ctx context.Context, cfg Config, dev Device, name string) (bool, error) {
	logger := xlog.WithComponentFromContext(ctx, "sync")

	final := filepath.Join(cfg.Destination, name)
	if _, err := os.Stat(final); err == nil {
		logger.Debug().
			Str(xlog.FieldEvent, "download.exists").
			Str(xlog.FieldFilename, name).
			Msg("already downloaded")
		return false, nil
	}

	tmp := filepath.Join(cfg.Destination, "."+name)
	if _, err := os.Stat(tmp); err == nil {
		logger.Warn().
			Str(xlog.FieldEvent, "download.stale_temp").
			Str(xlog.FieldPath, tmp).
			Msg("found unfinished download from a previous run, overwriting")
	}

	if cfg.DryRun {
		logger.Info().
			Str(xlog.FieldEvent, "download.would_download").
			Str(xlog.FieldFilename, name).
			Str(xlog.FieldPath, final).
			Msg("dry run: would download")
		return false, nil
	}

	logger.Info().
		Str(xlog.FieldEvent, "download.start").
		Str(xlog.FieldFilename, name).
		Str(xlog.FieldPath, final).
		Msg("downloading")

	f, err := os.Create(tmp)
	if err != nil {
		return false, fmt.Errorf("create temp file %s: %w", tmp, err)
	}

	if err := dev.Download(ctx, name, f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return false, err
	}

	// Flush to stable storage before the rename makes the file visible
	// under its final name.
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return false, fmt.Errorf("sync temp file %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("close temp file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("rename %s: %w", tmp, err)
	}

	logger.Info().
		Str(xlog.FieldEvent, "download.done").
		Str(xlog.FieldFilename, name).
		Msg("downloaded")
	return true, nil
}
