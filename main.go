package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/PolarWolf314/fidelius/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: ")+err.Error())
		os.Exit(1)
	}
}
