package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sequencer/internal/cli"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate one sequence and print the results",
	Long: `Calculates a single sequence from flags. Omitted flags take the configured defaults.

Example:
  sequencer calc --kind geometric --first 2 --step 2 --terms 5 --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Output, _ = cmd.Flags().GetString("output")

		var calc cli.CalcArgs
		calc.Kind, _ = cmd.Flags().GetString("kind")
		calc.FirstTerm, _ = cmd.Flags().GetString("first")
		calc.Step, _ = cmd.Flags().GetString("step")
		calc.TermCount, _ = cmd.Flags().GetString("terms")
		return cli.RunCalc(opts, calc)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringP("kind", "k", "", "Sequence type: arithmetic or geometric")
	calcCmd.Flags().StringP("first", "a", "", "First term (a₁)")
	calcCmd.Flags().StringP("step", "d", "", "Common difference (d) or common ratio (r)")
	calcCmd.Flags().StringP("terms", "n", "", "Number of terms (1-1000)")
	calcCmd.Flags().StringP("output", "o", cli.OutputText,
		fmt.Sprintf("Output format: %s", strings.Join(cli.OutputFormats, ", ")))
}
