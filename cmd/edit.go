package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
	"github.com/PolarWolf314/fidelius/internal/secrets"
	"github.com/PolarWolf314/fidelius/internal/ui"
)

var editRecipients recipientList

func init() {
	editCmd.Flags().VarP(&editRecipients, "recipient", "r",
		"recipient gpg will encrypt for; may be repeated (defaults to $FIDELIUS_RECIPIENTS)")
}

var editCmd = &cobra.Command{
	Use:   "edit -r ID <path>",
	Short: "Edit an encrypted file without creating decrypted plaintext",
	Long: `Edit an encrypted file without creating decrypted plaintext.

The $FIDELIUS_RECIPIENTS environment variable should be a whitespace
separated list of recipients GPG will encrypt the new contents for.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipients, err := resolveRecipients(editRecipients)
		if err != nil {
			return err
		}
		secret, err := keeper.Lookup(args[0])
		if err != nil {
			return err
		}

		oldText, err := secret.Contents(keeper.GPG)
		if err != nil {
			return err
		}
		newText, err := secrets.Edit(settings.Editor, oldText, secrets.PlainExtension(secret))
		if err != nil {
			return err
		}

		// Reject no-op edits before touching gpg; an empty or
		// unchanged result must not churn the ciphertext.
		if len(newText) == 0 {
			return ferrors.ErrEmptyContent
		}
		if bytes.Equal(newText, oldText) {
			return ferrors.ErrNoChanges
		}

		if err := keeper.GPG.EncryptText(
			secret.Encrypted, newText, secret.Armoured(), recipients); err != nil {
			return err
		}
		fmt.Printf("%s Encrypted new contents of %s\n", ui.Success.Sprint("✓"), enc(secret))

		if _, err := os.Stat(secret.Decrypted); err == nil {
			fmt.Println(color.YellowString(
				"Decrypted plaintext %s is out of date - run 'fidelius decrypt' "+
					"to update it or 'fidelius clean' to remove it",
				rel(secret.Decrypted)))
		}
		return nil
	},
}
