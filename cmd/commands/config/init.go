package config

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/wlsync/internal/config"
	"nathanbeddoewebdev/wlsync/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InitCommand returns the "config init" command.
func InitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively set up sync settings",
		Long: `Walk through the source spreadsheet, serial column, whitelist file and log
level with an interactive form, then save them.

Requires a terminal. Use "wlsync config set" in scripts.`,
		Args:         cobra.NoArgs,
		RunE:         runInit,
		SilenceUsage: true,
	}

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("config init requires an interactive terminal; use 'wlsync config set' instead")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updated, err := tui.ConfigInitForm(cfg)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Setup cancelled.")
			return nil
		}
		return err
	}

	if err := updated.Save(); err != nil {
		return err
	}

	path, _ := config.Path()
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}
