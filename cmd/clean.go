package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path...]",
	Short: "Delete decrypted plaintext files",
	Long: `Delete decrypted plaintext files.

If no paths are provided, deletes the plaintext of all secrets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectSecrets(args)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Deleting decrypted files...")
		defer cleanup()

		var output strings.Builder
		failed := 0
		for _, secret := range selected {
			if _, err := os.Stat(secret.Decrypted); os.IsNotExist(err) {
				continue
			}
			Logger.Infof("Deleting %s", keeper.Rel(secret.Decrypted))
			if err := os.Remove(secret.Decrypted); err != nil {
				failed++
				output.WriteString(color.RedString("✗") + " Failed to delete " +
					dec(secret) + ": " + err.Error() + "\n")
				continue
			}
			output.WriteString("Deleting " + dec(secret) + "\n")
		}

		spinner.FinalMSG = output.String()
		if failed > 0 {
			return fmt.Errorf("failed to delete %d decrypted files", failed)
		}
		return nil
	},
}
