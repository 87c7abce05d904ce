package config

import (
	"nathanbeddoewebdev/wlsync/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wlsync configuration",
		Long: "View and modify persistent wlsync settings.\n\n" +
			"Configuration is stored at ~/.config/wlsync/config.json\n" +
			"(override with " + config.EnvPath + ").\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(InitCommand())

	return cmd
}
