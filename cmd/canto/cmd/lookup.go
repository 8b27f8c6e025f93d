package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/glyph"
	"github.com/f3rmion/canto/internal/yale"
)

var lookupBig bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up dictionary readings for a word or its characters",
	Long: `Look up a word in the dictionary. Shows the readings for the whole
word when it has an entry, and the per-character readings in
primary-first order.

Example:
  canto lookup 學生
  canto lookup 佢 --big`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupBig, "big", false, "render each character as large block art")
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, _, err := loadAnnotator()
	if err != nil {
		return err
	}

	word := args[0]

	var renderer *glyph.Renderer
	if lookupBig {
		renderer, err = glyph.NewRenderer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	// Whole-word entry, if any.
	if len([]rune(word)) > 1 {
		if readings := a.Readings(word); readings != nil {
			fmt.Printf("%s\n", word)
			printReadings("  ", readings)
			fmt.Println()
		}
	}

	for _, r := range word {
		if !canto.IsCJK(r) && a.Readings(string(r)) == nil {
			continue
		}

		fmt.Printf("%s\n", string(r))
		if renderer != nil {
			fmt.Println(indent(renderer.Render(r, 32, 16), "  "))
		}

		readings := a.Readings(string(r))
		if readings == nil {
			fmt.Println("  (no readings)")
		} else {
			printReadings("  ", readings)
		}
		fmt.Println()
	}
	return nil
}

// printReadings lists readings primary-first, with the Yale form beside
// each convertible reading.
func printReadings(prefix string, readings []string) {
	for i, r := range readings {
		label := "also"
		if i == 0 {
			label = "jyutping"
		}
		line := fmt.Sprintf("%s%-8s %s", prefix, label, r)
		if y, err := yale.Convert(r); err == nil {
			line += fmt.Sprintf("  (yale: %s)", y)
		}
		fmt.Println(line)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
