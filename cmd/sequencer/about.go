package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Explain arithmetic and geometric sequences",
	RunE: func(cmd *cobra.Command, args []string) error {
		render := tui.ForOutput(os.Stdout)
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			render = tui.Plain
		}
		out, err := render(sequencer.About())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
