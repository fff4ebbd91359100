package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/fidelius/internal/secrets"
)

var (
	encryptRecipients recipientList
	encryptForce      bool
)

func init() {
	encryptCmd.Flags().VarP(&encryptRecipients, "recipient", "r",
		"recipient gpg will encrypt for; may be repeated (defaults to $FIDELIUS_RECIPIENTS)")
	encryptCmd.Flags().BoolVar(&encryptForce, "force", false,
		"re-encrypt secrets even when their contents are unchanged")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt -r ID [path...]",
	Short: "Create encrypted secrets from decrypted plaintext",
	Long: `Create encrypted secrets from decrypted plaintext.

If no paths are provided, re-encrypts all secrets with plaintext on
disk. Secrets whose plaintext is byte-identical to their current
contents are skipped unless --force is given.

The $FIDELIUS_RECIPIENTS environment variable should be a whitespace
separated list of recipients GPG will encrypt the new contents for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recipients, err := resolveRecipients(encryptRecipients)
		if err != nil {
			return err
		}
		selected, err := selectSecrets(args)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Encrypting secrets...")
		defer cleanup()

		var output strings.Builder
		failed := 0
		for _, secret := range selected {
			if _, err := os.Stat(secret.Decrypted); os.IsNotExist(err) {
				output.WriteString("Plaintext for " + enc(secret) + " does not exist\n")
				continue
			}

			if !encryptForce {
				unchanged, err := isUnchanged(secret)
				if err != nil {
					failed++
					output.WriteString(color.RedString("✗") + " Failed to read " +
						enc(secret) + ": " + err.Error() + "\n")
					continue
				}
				if unchanged {
					output.WriteString("Skipping " + enc(secret) +
						" as no changes have been made in " + dec(secret) + "\n")
					continue
				}
			}

			Logger.Infof("Re-encrypting %s from %s",
				keeper.Rel(secret.Encrypted), keeper.Rel(secret.Decrypted))
			if err := secret.ReEncrypt(keeper.GPG, recipients); err != nil {
				failed++
				output.WriteString(color.RedString("✗") + " Failed to encrypt " +
					enc(secret) + ": " + err.Error() + "\n")
				continue
			}
			output.WriteString("Encrypted " + enc(secret) +
				" from the plaintext in " + dec(secret) + "\n")
		}

		spinner.FinalMSG = output.String()
		if failed > 0 {
			return fmt.Errorf("failed to encrypt %d of %d secrets", failed, len(selected))
		}
		return nil
	},
}

// isUnchanged reports whether the on-disk plaintext matches the
// current decrypted contents of the ciphertext.
func isUnchanged(secret secrets.Secret) (bool, error) {
	plaintext, err := secret.Plaintext()
	if err != nil {
		return false, err
	}
	contents, err := secret.Contents(keeper.GPG)
	if err != nil {
		return false, err
	}
	return bytes.Equal(plaintext, contents), nil
}
