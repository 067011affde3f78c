package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sequencer/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sequencer",
	Short: "Sequencer calculates arithmetic and geometric sequences",
	Long: `Sequencer calculates the terms, formula, last term and sum of arithmetic
and geometric sequences. Run it without a command for the interactive form.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable styled terminal output")
}

func runOptions(cmd *cobra.Command) cli.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	plain, _ := cmd.Flags().GetBool("plain")
	return cli.RunOptions{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		Plain:      plain,
	}
}
