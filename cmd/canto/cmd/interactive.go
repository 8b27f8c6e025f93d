package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive annotator",
	Long: `Launch an interactive terminal UI for annotating Cantonese text.

Type a sentence and press Enter to see it segmented into words with
Jyutping and Yale readings.

Controls:
  Enter    Annotate
  Ctrl+Y   Copy Jyutping to clipboard
  Esc      Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
