package main

import (
	"fmt"
	"os"

	"github.com/givables-xyz/givables-deploy/internal/cli"
	"github.com/givables-xyz/givables-deploy/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
