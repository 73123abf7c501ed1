package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridden at build time with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "t2048 %s\n", Version)
	},
}
