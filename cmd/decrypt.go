package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [path...]",
	Short: "Create decrypted plaintext from encrypted secrets",
	Long: `Create decrypted plaintext from encrypted secrets.

If no paths are provided, decrypts all secrets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectSecrets(args)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Decrypting secrets...")
		defer cleanup()

		var output strings.Builder
		failed := 0
		for _, secret := range selected {
			Logger.Infof("Decrypting %s to %s",
				keeper.Rel(secret.Encrypted), keeper.Rel(secret.Decrypted))
			if err := secret.Decrypt(keeper.GPG); err != nil {
				failed++
				output.WriteString(color.RedString("✗") + " Failed to decrypt " +
					enc(secret) + ": " + err.Error() + "\n")
				continue
			}
			output.WriteString("Decrypted " + enc(secret) + " to " + dec(secret) + "\n")
		}

		spinner.FinalMSG = output.String()
		if failed > 0 {
			return fmt.Errorf("failed to decrypt %d of %d secrets", failed, len(selected))
		}
		return nil
	},
}
