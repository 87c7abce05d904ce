package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/wlsync/internal/auditlog"

	"github.com/spf13/cobra"
)

// PruneCommand returns the "audit prune" command.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Forget recorded sync runs older than a duration",
		Long: `Delete recorded sync runs older than a duration. The whitelist itself is
never touched.

Durations accept Go syntax (72h, 90m) or whole days (30d).

Examples:
  wlsync audit prune --older-than 30d
  wlsync audit prune --older-than 72h`,
		Args:         cobra.NoArgs,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Forget sync runs recorded before this long ago (e.g. 30d, 72h)")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("--older-than is required")
	}

	age, err := parseDuration(raw)
	if err != nil {
		return err
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	removed, err := repo.Prune(age)
	if err != nil {
		return fmt.Errorf("failed to prune sync history: %w", err)
	}

	cutoff := time.Now().Add(-age).Local().Format("2006-01-02 15:04")
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d sync run(s) recorded before %s.\n", removed, cutoff)
	return nil
}

// parseDuration accepts time.ParseDuration syntax plus a whole-day "Nd" form.
func parseDuration(input string) (time.Duration, error) {
	var d time.Duration
	if days, ok := strings.CutSuffix(input, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else {
		parsed, err := time.ParseDuration(input)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		d = parsed
	}

	if d < 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
