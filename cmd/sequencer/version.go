package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sequencer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sequencer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sequencer version %s\n", strings.TrimSpace(sequencer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
