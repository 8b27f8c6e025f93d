package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/canto/internal/yale"
)

var yaleNumeric bool

var yaleCmd = &cobra.Command{
	Use:   "yale <syllables...>",
	Short: "Convert Jyutping syllables to Yale romanization",
	Long: `Convert Jyutping syllables to Yale romanization. By default tones are
rendered as diacritics; --numeric keeps the tone digit instead.

Example:
  canto yale soeng5 tong4
  canto yale keoi5 --numeric`,
	Args: cobra.MinimumNArgs(1),
	RunE: runYale,
}

func init() {
	rootCmd.AddCommand(yaleCmd)
	yaleCmd.Flags().BoolVar(&yaleNumeric, "numeric", false, "keep tone digits instead of diacritics")
}

func runYale(cmd *cobra.Command, args []string) error {
	jyutping := strings.Join(args, " ")

	var out string
	var err error
	if yaleNumeric {
		out, err = yale.ConvertNumeric(jyutping)
	} else {
		out, err = yale.Convert(jyutping)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}
