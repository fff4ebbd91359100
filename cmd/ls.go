package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all encrypted paths with their decrypted path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, secret := range keeper.All() {
			fmt.Printf("%s -> %s\n", enc(secret), dec(secret))
		}
		return nil
	},
}

var lsEncryptedCmd = &cobra.Command{
	Use:   "ls-encrypted",
	Short: "List all encrypted files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, secret := range keeper.All() {
			fmt.Println(enc(secret))
		}
		return nil
	},
}

var lsDecryptedCmd = &cobra.Command{
	Use:   "ls-decrypted",
	Short: "List all decrypted files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, secret := range keeper.All() {
			fmt.Println(dec(secret))
		}
		return nil
	},
}
