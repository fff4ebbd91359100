package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/PolarWolf314/fidelius/cmd.Version=...".
var Version = "2.0.1"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the application version",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Fidelius", "", "green", true)
		banner.Print()
		fmt.Printf("fidelius %s\n", Version)
	},
}
