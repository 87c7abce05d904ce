package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/wlsync/internal/auditlog"
	"nathanbeddoewebdev/wlsync/internal/config"
	"nathanbeddoewebdev/wlsync/internal/syncer"
	"nathanbeddoewebdev/wlsync/internal/tui"
	"nathanbeddoewebdev/wlsync/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuditAnnotation marks commands whose runs are written to the audit log.
const AuditAnnotation = "wlsync/audit"

// NewCommand returns the "sync" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge serials from the submission spreadsheet into the whitelist",
		Long: `Read the submission spreadsheet, normalize every serial in the configured
column, and merge the resulting tokens into the whitelist file.

Only the first sheet is read. Tokens are never removed from the whitelist.
A missing spreadsheet or one without valid serials is not an error.

Exit status is 0 whenever the run finishes without error. With --exit-code
the status is 1 when the whitelist changed, so scripts can react to it.

Examples:
  wlsync sync
  wlsync sync --source data/export.xlsx --whitelist /etc/device/WhiteList.config
  wlsync sync --dry-run -o json`,
		Args:         cobra.NoArgs,
		RunE:         runSync,
		SilenceUsage: true,
		Annotations:  map[string]string{AuditAnnotation: "true"},
	}

	cmd.Flags().String("source", "", "Spreadsheet to read (default from config)")
	cmd.Flags().String("whitelist", "", "Whitelist file to update (default from config)")
	cmd.Flags().String("column", "", "Header of the serial column (default from config)")
	cmd.Flags().Bool("dry-run", false, "Report what would change without writing the whitelist")
	cmd.Flags().Bool("exit-code", false, "Exit with status 1 when the whitelist changed")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Source:    opts.Source,
		Whitelist: opts.Whitelist,
	}))

	report, err := run(cmd, opts, output)
	if err != nil {
		cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{Status: "error"}))
		return err
	}

	meta := auditlog.Metadata{
		Status:    string(report.Status),
		Extracted: report.Extracted,
	}
	if report.Merge != nil {
		meta.Added = len(report.Merge.Added)
		meta.Total = report.Merge.Total
	}
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), meta))

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(cmd, report)
	}

	if exitCode, _ := cmd.Flags().GetBool("exit-code"); exitCode && report.Changed() {
		return &util.ExitError{Code: 1}
	}
	return nil
}

// resolveOptions merges flags over the persisted config and built-in defaults.
func resolveOptions(cmd *cobra.Command) (syncer.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return syncer.Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return syncer.Options{
		Source:    flagOr(cmd, "source", cfg.SourcePath()),
		Whitelist: flagOr(cmd, "whitelist", cfg.WhitelistPath()),
		Column:    flagOr(cmd, "column", cfg.ColumnName()),
		DryRun:    dryRun,
		Logger:    slog.Default(),
	}, nil
}

func flagOr(cmd *cobra.Command, name, fallback string) string {
	v, _ := cmd.Flags().GetString(name)
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// run executes the pipeline, behind a spinner when attached to a terminal.
func run(cmd *cobra.Command, opts syncer.Options, output string) (*syncer.Report, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if output == "json" || !writesToTerminal(cmd.ErrOrStderr()) {
		return syncer.Run(ctx, opts)
	}

	var report *syncer.Report
	err := tui.RunWithSpinner(cmd.ErrOrStderr(), "Syncing whitelist...", func(ctx context.Context) error {
		var err error
		report, err = syncer.Run(ctx, opts)
		return err
	})
	return report, err
}

func printReport(cmd *cobra.Command, report *syncer.Report) {
	out := cmd.OutOrStdout()
	if writesToTerminal(out) {
		fmt.Fprintln(out, tui.RenderReport(report))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Status:\t%s\n", report.Status)
	fmt.Fprintf(w, "Source:\t%s\n", report.Source)
	fmt.Fprintf(w, "Whitelist:\t%s\n", report.Whitelist)
	if report.DryRun {
		fmt.Fprintf(w, "Dry run:\t%v\n", true)
	}
	if report.Status != syncer.StatusNoInput {
		fmt.Fprintf(w, "Rows:\t%d\n", report.Rows)
		fmt.Fprintf(w, "Extracted:\t%d\n", report.Extracted)
	}
	if report.Merge != nil {
		fmt.Fprintf(w, "Added:\t%d\n", len(report.Merge.Added))
		fmt.Fprintf(w, "Total:\t%d\n", report.Merge.Total)
		for _, t := range report.Merge.Added {
			fmt.Fprintf(w, "  +\t%s\n", t)
		}
	}
	w.Flush()
}

func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
