package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/intake/internal/config"
	"github.com/idelchi/intake/internal/intake"
	"github.com/idelchi/intake/internal/logging"
	"github.com/idelchi/intake/internal/output"
	"github.com/idelchi/intake/internal/report"
)

// runner carries the state of one run through its phases.
type runner struct {
	cfg     config.Config
	console *logging.Console
	log     *logging.Logger
	dir     output.Dir
}

//nolint:funlen // Linear sequence of run phases.
func (c CLI) logic(ctx context.Context, cfg config.Config, opts flags) error {
	console := logging.NewConsole(c.stdout, c.stderr, logging.ColorEnabled(cfg.ColorMode, asFile(c.stdout)))
	r := &runner{
		cfg:     cfg,
		console: console,
		log:     logging.NewLogger(console, cfg.Now),
	}

	console.Banner("AUTOMATION SYSTEM - Starting")

	// Phase 1: the input folder must be usable before anything is written.
	if err := intake.ValidateFolder(cfg.InputDir); err != nil {
		r.log.Error("%s", reason(err))

		return &ExitError{Code: ExitValidation, Err: err}
	}

	inputAbs, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		r.log.Error("Cannot resolve input folder: %v", err)

		return &ExitError{Code: ExitValidation, Err: err}
	}

	// Phase 2: output folder; from here on the log can be persisted.
	r.dir, err = output.Create(inputAbs, cfg.OutputPrefix, cfg.Now())
	if err != nil {
		console.Fail("ERROR", "Failed to create output folder: "+err.Error())

		return &ExitError{Code: ExitInfrastructure, Err: err}
	}

	r.log.Info("Automation system started")
	r.log.Info("Input folder: %s", inputAbs)
	r.log.Info("Output folder: %s", r.dir.Path)

	if r.dir.Reused {
		r.log.Warning("Output folder already existed and is reused: %s", filepath.Base(r.dir.Path))
	}

	// Phase 3: scan and classify.
	stats, err := r.scan(ctx, inputAbs)
	if err != nil {
		return r.fail(err)
	}

	// Phase 4: report.
	meta := report.Meta{GeneratedAt: cfg.Now(), InputFolder: inputAbs}
	if err := report.Write(r.dir.File(cfg.ReportName), *stats, meta); err != nil {
		r.log.Error("Failed to generate summary: %v", err)
		_ = r.log.Persist(r.dir.File(cfg.LogName))

		return &ExitError{Code: ExitInfrastructure, Err: err}
	}

	r.log.Success("Summary generated: %s", cfg.ReportName)

	// Phase 5: log.
	r.log.Info("Saving log file")

	if err := r.log.Persist(r.dir.File(cfg.LogName)); err != nil {
		return &ExitError{Code: ExitInfrastructure, Err: err}
	}

	r.log.ConsoleOnly(logging.LevelSuccess, "Automation completed successfully")

	if opts.json {
		if err := PrintJSON(stats, c.stdout); err != nil {
			return &ExitError{Code: ExitInfrastructure, Err: err}
		}
	}

	console.Println()
	console.Rule()
	console.Success("SUCCESS", "Automation completed successfully!")
	console.Rule()

	if err := PrintTable(stats, c.stdout); err != nil {
		return &ExitError{Code: ExitInfrastructure, Err: err}
	}

	console.Println("\nOutput location: " + console.Highlight(r.dir.Path))
	console.Println("  - " + cfg.ReportName)
	console.Println("  - " + cfg.LogName + "\n")

	return nil
}

// scan lists and classifies the input folder, logging progress and per-file warnings.
func (r *runner) scan(ctx context.Context, inputAbs string) (*intake.Stats, error) {
	r.log.Info("Scanning input folder: %s", inputAbs)

	opt := intake.Options{
		Path: inputAbs,
		OnOutcome: func(o intake.Outcome) {
			switch o.Kind {
			case intake.Valid:
				r.log.Debug(r.cfg.Debug, "%s: %s (%s, %d lines)", o.Record.Name, o.Kind, o.Record.Encoding, o.Record.Lines)
			case intake.Unreadable:
				r.log.Debug(r.cfg.Debug, "%s: %s (%v)", filepath.Base(o.Path), o.Kind, o.Err)
			default:
				r.log.Debug(r.cfg.Debug, "%s: %s", filepath.Base(o.Path), o.Kind)
			}
		},
	}

	listing, err := intake.List(ctx, opt)
	if err != nil {
		return nil, err
	}

	if len(listing.Files) > 0 {
		r.log.Info("Found %d file(s) in input folder", len(listing.Files))
	}

	stats, err := intake.Scan(ctx, opt, listing)
	if err != nil {
		var scanErr *intake.ScanError
		if errors.As(err, &scanErr) && scanErr.Stats != nil {
			r.warnings(*scanErr.Stats)
		}

		return nil, err
	}

	r.warnings(*stats)
	r.log.Success("Validation passed: %d valid file(s) found", stats.FileCount)
	r.log.Info("Collected %s line(s) in %s", humanize.Comma(stats.TotalLines),
		humanize.IBytes(uint64(stats.TotalBytes))) //nolint:gosec // Sizes are never negative

	return stats, nil
}

// warnings logs one WARNING per non-empty problem bucket.
func (r *runner) warnings(stats intake.Stats) {
	if len(stats.Empty) > 0 {
		r.log.Warning("Found %d empty file(s): %s", len(stats.Empty), joinNames(stats.Empty))
	}

	if len(stats.Unreadable) > 0 {
		r.log.Warning("Found %d unreadable file(s): %s", len(stats.Unreadable), joinNames(stats.Unreadable))
	}
}

// fail logs a scan failure, persists the log, and maps the failure to an exit code.
func (r *runner) fail(err error) error {
	logPath := r.dir.File(r.cfg.LogName)

	if errors.Is(err, context.Canceled) {
		r.log.Warning("Operation cancelled by user")
		_ = r.log.Persist(logPath)
		r.console.Println()
		r.console.Notice("Operation cancelled by user")
		r.console.Println()

		return &ExitError{Code: ExitCancelled, Err: err}
	}

	r.log.Error("%s", reason(err))
	r.log.Error("Validation failed - exiting")
	_ = r.log.Persist(logPath)

	r.console.Println()
	r.console.Fail("FAILED", "Validation errors occurred. Check log for details.")
	r.console.Println()

	return &ExitError{Code: ExitValidation, Err: err}
}

// reason returns the human-readable message of a scan error.
func reason(err error) string {
	var scanErr *intake.ScanError
	if errors.As(err, &scanErr) {
		if scanErr.Err != nil {
			return fmt.Sprintf("%s (%v)", scanErr.Reason, scanErr.Err)
		}

		return scanErr.Reason
	}

	return err.Error()
}

// joinNames returns the base names of paths, comma-separated.
func joinNames(paths []string) string {
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = filepath.Base(path)
	}

	return strings.Join(names, ", ")
}
