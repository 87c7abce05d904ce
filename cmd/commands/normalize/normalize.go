package normalize

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/wlsync/internal/serial"

	"github.com/spf13/cobra"
)

// Result is the normalization of one input value.
type Result struct {
	Input string `json:"input"`
	Token string `json:"token,omitempty"`
	Valid bool   `json:"valid"`
}

// NewCommand returns the "normalize" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [value...]",
		Short: "Show the token a submitted serial normalizes to",
		Long: `Normalize serial values the same way sync does and print the resulting
tokens. Values with no hex digits are shown as "-".

With no arguments, values are read from stdin, one per line.

Examples:
  wlsync normalize AB.CD.12 12-ab-34
  cut -d, -f3 export.csv | wlsync normalize -o json`,
		RunE:         runNormalize,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	values := args
	if len(values) == 0 {
		var err error
		values, err = readLines(cmd)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	results := make([]Result, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		token, ok := serial.Normalize(v)
		results = append(results, Result{Input: v, Token: token, Valid: ok})
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tTOKEN")
	fmt.Fprintln(w, "-----\t-----")
	for _, r := range results {
		token := r.Token
		if !r.Valid {
			token = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Input, token)
	}
	return w.Flush()
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
