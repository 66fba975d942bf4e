package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// newRootCommand builds the passhash command. The passphrase comes from the
// first argument or, when absent, the first line of stdin.
func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "passhash [passphrase]",
		Short: "Print the bcrypt hash to use as AUTH_PASSPHRASE_HASH",
		Long: `Hash the calendar owner's passphrase for the API.

Example:
  passhash 'correct horse battery'
  echo 'correct horse battery' | passhash`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				plain = line
			}

			hash, err := domain.HashPassphrase(plain)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
