package whitelist

import (
	"strings"

	"nathanbeddoewebdev/wlsync/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "whitelist" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Inspect the device whitelist",
		Long: "Inspect the whitelist file that sync maintains.\n\n" +
			"The file path comes from --whitelist or the 'whitelist' config key.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("whitelist", "", "Whitelist file (default from config)")

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CheckCommand())

	return cmd
}

// resolvePath returns the --whitelist flag or the configured path.
func resolvePath(cmd *cobra.Command) (string, error) {
	if v, _ := cmd.Flags().GetString("whitelist"); strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.WhitelistPath(), nil
}
