package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>...",
	Short: "Print the contents of an encrypted file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			secret, err := keeper.Lookup(path)
			if err != nil {
				return err
			}
			contents, err := secret.Contents(keeper.GPG)
			if err != nil {
				return err
			}
			// No trailing newline; the plaintext is shown byte for byte.
			if _, err := os.Stdout.Write(contents); err != nil {
				return err
			}
		}
		return nil
	},
}
