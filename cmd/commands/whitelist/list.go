package whitelist

import (
	"encoding/json"
	"fmt"

	"nathanbeddoewebdev/wlsync/internal/whitelist"

	"github.com/spf13/cobra"
)

type listOutput struct {
	Path   string   `json:"path"`
	Count  int      `json:"count"`
	Tokens []string `json:"tokens"`
}

// ListCommand returns the "whitelist list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List whitelisted tokens",
		Long: `List the tokens in the whitelist in ascending order.

Examples:
  wlsync whitelist list
  wlsync whitelist list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	path, err := resolvePath(cmd)
	if err != nil {
		return err
	}

	set, err := whitelist.New(path).Load()
	if err != nil {
		return err
	}
	tokens := set.Sorted()

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listOutput{Path: path, Count: len(tokens), Tokens: tokens})
	}

	if len(tokens) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No tokens in %s.\n", path)
		return nil
	}
	for _, t := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d token(s) in %s\n", len(tokens), path)
	return nil
}
