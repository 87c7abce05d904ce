package cmd

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	synccmd "nathanbeddoewebdev/wlsync/cmd/commands/sync"
	"nathanbeddoewebdev/wlsync/internal/auditlog"
	"nathanbeddoewebdev/wlsync/internal/util"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// recordAudit writes a best-effort audit entry for commands annotated for
// auditing. Failures are logged at debug level and otherwise ignored.
func recordAudit(root, executed *cobra.Command, runErr error, start time.Time) {
	if executed == nil || executed.Annotations[synccmd.AuditAnnotation] != "true" {
		return
	}
	if noAudit, _ := root.PersistentFlags().GetBool("no-audit"); noAudit {
		return
	}

	repo, err := auditlog.Open()
	if err != nil {
		slog.Debug("audit log unavailable", "error", err)
		return
	}
	defer repo.Close()

	entry := buildEntry(executed, runErr, start)
	if err := repo.Save(entry); err != nil {
		slog.Debug("failed to record audit entry", "error", err)
	}
}

func buildEntry(cmd *cobra.Command, runErr error, start time.Time) *auditlog.AuditEntry {
	entry := &auditlog.AuditEntry{
		Timestamp:  start.UTC(),
		Command:    cmd.CommandPath(),
		Args:       changedFlags(cmd),
		DurationMs: time.Since(start).Milliseconds(),
	}
	auditlog.MetadataFromContext(cmd.Context()).Apply(entry)

	// An ExitError only signals the outcome; the run itself succeeded.
	var exitErr *util.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = runErr.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	return entry
}

// changedFlags renders the flags set on the command line as --name=value.
func changedFlags(cmd *cobra.Command) string {
	var parts []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		parts = append(parts, "--"+f.Name+"="+f.Value.String())
	})
	return strings.Join(parts, " ")
}
