package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
	"github.com/PolarWolf314/fidelius/internal/secrets"
	"github.com/PolarWolf314/fidelius/internal/ui"
)

var createRecipients recipientList

func init() {
	createCmd.Flags().VarP(&createRecipients, "recipient", "r",
		"recipient gpg will encrypt for; may be repeated (defaults to $FIDELIUS_RECIPIENTS)")
}

var createCmd = &cobra.Command{
	Use:   "create -r ID <path> [plaintext]",
	Short: "Create a new encrypted secret",
	Long: `Create a new encrypted secret from a plaintext file, or from freshly
edited text when no plaintext file is given.

Paths should match one of the following forms:

  {directory}.encrypted/{name}.{ext}.{asc|gpg}
  {directory}.encrypted/{name}.encrypted.{ext}.{asc|gpg}
  {name}.encrypted.{ext}.{asc|gpg}

The $FIDELIUS_RECIPIENTS environment variable should be a whitespace
separated list of recipients GPG will encrypt the new contents for.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipients, err := resolveRecipients(createRecipients)
		if err != nil {
			return err
		}

		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := validateCreatePath(path); err != nil {
			return err
		}

		fallback, err := secrets.NewUnpaired(path)
		if err != nil {
			return err
		}
		secret := keeper.Get(path, fallback)

		if len(args) == 2 {
			if err := keeper.GPG.EncryptFile(
				secret.Encrypted, args[1], secret.Armoured(), recipients); err != nil {
				return err
			}
		} else {
			text, err := secrets.Edit(settings.Editor, nil, secrets.PlainExtension(secret))
			if err != nil {
				return err
			}
			if len(text) == 0 {
				return fmt.Errorf("%w: new file is empty", ferrors.ErrEmptyContent)
			}
			if err := keeper.GPG.EncryptText(
				secret.Encrypted, text, secret.Armoured(), recipients); err != nil {
				return err
			}
		}

		fmt.Printf("%s Created %s\n", ui.Success.Sprint("✓"), enc(secret))
		return nil
	},
}

// validateCreatePath checks the new path fits the naming convention
// before anything is encrypted, so the new secret will be discovered
// by later scans.
func validateCreatePath(path string) error {
	ext := filepath.Ext(path)
	if ext != secrets.ExtArmoured && ext != secrets.ExtBinary {
		return fmt.Errorf("%w: file names should be in the form "+
			"'<name>.<ext>.<asc|gpg>' or '<name>.encrypted.<ext>.<asc|gpg>'",
			ferrors.ErrUnknownFormat)
	}

	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if strings.Contains(part, secrets.EncryptedMarker) {
			return nil
		}
	}
	return fmt.Errorf("%w: file names should be in the form "+
		"'<name>.encrypted.<ext>.<asc|gpg>' or be in a directory named "+
		"in the form '<name>.encrypted/'", ferrors.ErrNotManaged)
}
