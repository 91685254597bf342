package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of text-to-word",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "text-to-word %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
