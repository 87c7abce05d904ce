package whitelist

import (
	"fmt"

	"nathanbeddoewebdev/wlsync/internal/serial"
	"nathanbeddoewebdev/wlsync/internal/util"
	"nathanbeddoewebdev/wlsync/internal/whitelist"

	"github.com/spf13/cobra"
)

// CheckCommand returns the "whitelist check" command.
func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <serial>...",
		Short: "Check whether serials are whitelisted",
		Long: `Normalize each serial and report whether its token is in the whitelist.
Exits with status 1 if any serial is not listed.

Examples:
  wlsync whitelist check AB.CD.12
  wlsync whitelist check 12-ab-34 ff01 --whitelist /etc/device/WhiteList.config`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(cmd)
	if err != nil {
		return err
	}

	set, err := whitelist.New(path).Load()
	if err != nil {
		return err
	}

	missing := 0
	for _, raw := range args {
		token, ok := serial.Normalize(raw)
		switch {
		case !ok:
			missing++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no valid token\n", raw)
		case set.Has(token):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: listed (%s)\n", raw, token)
		default:
			missing++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not listed (%s)\n", raw, token)
		}
	}

	if missing > 0 {
		return &util.ExitError{Code: 1}
	}
	return nil
}
