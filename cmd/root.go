package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/fidelius/internal/configs"
	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
	logger "github.com/PolarWolf314/fidelius/internal/logging"
	"github.com/PolarWolf314/fidelius/internal/secrets"
	"github.com/PolarWolf314/fidelius/internal/utils"
)

var (
	rootPath string
	verbose  bool
	debug    bool

	Logger   logger.Logger
	settings configs.Settings
	keeper   *secrets.Keeper

	RootCmd = &cobra.Command{
		Use:   "fidelius",
		Short: "Manage GPG encrypted secrets in a git repository",
		Long: `Fidelius manages GPG encrypted secrets in a git repository.

Paths follow simple rules that are used to select files to decrypt and
where the decrypted files will be written:

  Paths like 'file.encrypted.ext.asc' are decrypted to 'file.decrypted.ext'.
  Paths like 'dir.encrypted/file.ext.asc' are decrypted to 'dir/file.decrypted.ext'.

The gpg command is used to perform all encryption and decryption.
Before any command runs, fidelius checks that every decrypted path is
excluded by a .gitignore file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{Verbose: verbose, Debug: debug}
			if skipsRegistry(cmd) {
				return nil
			}
			return setup()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&rootPath, "path", "p", "",
		"directory to search for secrets (defaults to the current git repository)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output and display gpg's normal stderr output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"enable debug output")

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(lsEncryptedCmd)
	RootCmd.AddCommand(lsDecryptedCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(cleanCmd)
	RootCmd.AddCommand(catCmd)
	RootCmd.AddCommand(viewCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(createCmd)
}

// skipsRegistry reports whether a command runs without a secret
// registry, so it works outside a git repository.
func skipsRegistry(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// setup locates the root directory, builds the secret registry, and
// runs the gitignore check that gates every further operation.
func setup() error {
	root := rootPath
	if root == "" {
		found, err := utils.FindGitRoot()
		if err != nil {
			return err
		}
		if found == "" {
			return fmt.Errorf("%w: give a directory with --path", ferrors.ErrNoRepository)
		}
		root = found
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot search %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot search %s: not a directory", root)
	}

	settings = configs.Load(root)

	Logger.Infof("Searching for encrypted files in %s", root)
	keeper, err = secrets.NewKeeper(root, secrets.NewGPG(verbose))
	if err != nil {
		return err
	}
	Logger.Infof("Found %d secrets", keeper.Len())

	Logger.Debugf("Checking all decrypted files are ignored by git")
	return keeper.CheckIgnore()
}
