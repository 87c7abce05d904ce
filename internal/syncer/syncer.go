// Package syncer runs the extract-then-merge pipeline that keeps the device
// allow-list in step with the submission spreadsheet.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"nathanbeddoewebdev/wlsync/internal/domain"
	"nathanbeddoewebdev/wlsync/internal/source"
	"nathanbeddoewebdev/wlsync/internal/whitelist"
)

// Status summarises how a run ended.
type Status string

const (
	// StatusNoInput means the source file does not exist.
	StatusNoInput Status = "no-input"

	// StatusNoTokens means the source held no valid serials.
	StatusNoTokens Status = "no-tokens"

	// StatusUnchanged means every extracted token was already listed.
	StatusUnchanged Status = "unchanged"

	// StatusUpdated means at least one token was added.
	StatusUpdated Status = "updated"
)

// Options configures a run.
type Options struct {
	Source    string
	Whitelist string
	Column    string

	// DryRun computes the merge without writing the allow-list.
	DryRun bool

	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Report describes a finished run.
type Report struct {
	Status    Status                 `json:"status"`
	Source    string                 `json:"source"`
	Whitelist string                 `json:"whitelist"`
	DryRun    bool                   `json:"dry_run,omitempty"`
	Sheet     string                 `json:"sheet,omitempty"`
	Rows      int                    `json:"rows"`
	Values    int                    `json:"values"`
	Extracted int                    `json:"extracted"`
	Rejected  []string               `json:"rejected,omitempty"`
	Merge     *whitelist.MergeResult `json:"merge,omitempty"`
}

// Changed reports whether the run added tokens to the allow-list (or would
// have, for a dry run).
func (r *Report) Changed() bool {
	return r.Merge != nil && r.Merge.Changed
}

// Run extracts tokens from opts.Source and merges them into opts.Whitelist.
// A missing source or a source without tokens is not an error; the report
// status says which.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	report := &Report{
		Source:    opts.Source,
		Whitelist: opts.Whitelist,
		DryRun:    opts.DryRun,
	}

	if !opts.DryRun {
		ensureSourceDir(log, opts.Source)
	}

	ext, err := source.Extract(opts.Source, opts.Column)
	if err != nil {
		if errors.Is(err, domain.ErrNoInputFile) {
			log.Warn("source file not found, nothing to do", "source", opts.Source)
			report.Status = StatusNoInput
			return report, nil
		}
		var mce *source.MissingColumnError
		if errors.As(err, &mce) {
			log.Error("serial column not found", "column", mce.Column, "available", mce.Available)
		}
		return nil, fmt.Errorf("failed to extract serials: %w", err)
	}

	report.Sheet = ext.Sheet
	report.Rows = ext.Rows
	report.Values = ext.Values
	report.Extracted = ext.Tokens.Len()
	report.Rejected = ext.Rejected
	log.Info("extracted serials",
		"source", opts.Source,
		"sheet", ext.Sheet,
		"rows", ext.Rows,
		"tokens", ext.Tokens.Len(),
		"rejected", len(ext.Rejected),
	)
	for _, v := range ext.Rejected {
		log.Debug("value held no hex digits", "value", v)
	}

	if ext.Tokens.Len() == 0 {
		log.Warn("no valid serials extracted", "source", opts.Source)
		report.Status = StatusNoTokens
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wl := whitelist.New(opts.Whitelist)
	var result *whitelist.MergeResult
	if opts.DryRun {
		result, _, err = wl.Plan(ext.Tokens)
	} else {
		result, err = wl.Merge(ext.Tokens)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update whitelist: %w", err)
	}

	report.Merge = result
	report.Status = StatusUnchanged
	if result.Changed {
		report.Status = StatusUpdated
	}
	log.Info("whitelist merged",
		"whitelist", opts.Whitelist,
		"total", result.Total,
		"added", len(result.Added),
		"dry_run", opts.DryRun,
	)
	return report, nil
}

// ensureSourceDir creates the directory the source is expected in so the
// operator knows where to drop the export.
func ensureSourceDir(log *slog.Logger, path string) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create source directory", "dir", dir, "error", err)
	}
}
