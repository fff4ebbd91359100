package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/fidelius/internal/utils"
)

var viewCmd = &cobra.Command{
	Use:   "view <path>",
	Short: "View the decrypted text of an encrypted file in your $PAGER",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := keeper.Lookup(args[0])
		if err != nil {
			return err
		}
		contents, err := secret.Contents(keeper.GPG)
		if err != nil {
			return err
		}

		// Page only when attached to a terminal; otherwise behave
		// like cat so output can be piped.
		if !utils.IsTerminal() {
			_, err := os.Stdout.Write(contents)
			return err
		}
		return page(settings.Pager, contents)
	},
}

// page feeds contents to the pager command on stdin.
func page(pager string, contents []byte) error {
	parts := strings.Fields(pager)
	if len(parts) == 0 {
		parts = []string{"less"}
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = bytes.NewReader(contents)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %s failed: %w", parts[0], err)
	}
	return nil
}
