package main

import (
	"github.com/aretw0/sequencer/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive sequence form",
	Long:  `Asks for the sequence type and parameters, shows the results and repeats until you quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunInteractive(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no command is given.
	rootCmd.RunE = runCmd.RunE
}
