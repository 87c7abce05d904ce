package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/wlsync/cmd/commands/audit"
	cfgcmd "nathanbeddoewebdev/wlsync/cmd/commands/config"
	"nathanbeddoewebdev/wlsync/cmd/commands/normalize"
	synccmd "nathanbeddoewebdev/wlsync/cmd/commands/sync"
	wlcmd "nathanbeddoewebdev/wlsync/cmd/commands/whitelist"
	"nathanbeddoewebdev/wlsync/internal/config"
	"nathanbeddoewebdev/wlsync/internal/logging"
	"nathanbeddoewebdev/wlsync/internal/tui/styles"
	"nathanbeddoewebdev/wlsync/internal/util"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "wlsync",
		Short: "Keep the device whitelist in step with submitted serial numbers",
		Long: `wlsync reads device serial numbers submitted through a spreadsheet form,
normalizes them to lowercase hex tokens, and merges them into the whitelist
file used by the device authentication check.

Tokens are only ever added. The whitelist is rewritten sorted, with a fixed
comment header.

Quick start:
  wlsync config init               # Pick spreadsheet, column and whitelist
  wlsync sync                      # Merge new serials into the whitelist
  wlsync whitelist check AB.CD.12  # Is this device allowed?
  wlsync audit list                # Review past sync runs`,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default from config, else info)")
	cmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	cmd.PersistentFlags().Bool("no-audit", false, "Do not record this run in the audit log")

	cmd.AddCommand(synccmd.NewCommand())
	cmd.AddCommand(normalize.NewCommand())
	cmd.AddCommand(wlcmd.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// setupLogging configures slog from flags, falling back to the config file.
// Logs go to stderr so stdout stays parseable.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	if level == "" {
		if cfg, err := config.Load(); err == nil {
			level = cfg.LogLevel
		}
	}

	if _, err := logging.New(cmd.ErrOrStderr(), level, format); err != nil {
		return err
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()

	start := time.Now()
	executed, err := root.ExecuteC()
	recordAudit(root, executed, err, start)

	if err == nil {
		return
	}

	var exitErr *util.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, styles.ErrorText.Render("Error:")+" "+err.Error())
	os.Exit(1)
}
