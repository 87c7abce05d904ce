package audit

import "github.com/spf13/cobra"

// NewCommand returns the "audit" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Review past sync runs",
		Long: "Every 'wlsync sync' run is recorded with its status, the number of\n" +
			"tokens added and the whitelist total. Pass --no-audit to skip recording.\n\n" +
			"History is stored locally in ~/.config/wlsync/wlsync.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
