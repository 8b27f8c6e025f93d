package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/clipboard"
	"github.com/f3rmion/canto/internal/mandarin"
)

var (
	annotateJSON     bool
	annotateMandarin bool
	annotateCopy     bool
	annotateNoYale   bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [text...]",
	Short: "Segment text and annotate it with Jyutping and Yale readings",
	Long: `Segment Cantonese text into words and annotate each word with its
Jyutping reading and derived Yale romanization. Text is taken from the
arguments, or from stdin when none are given.

Example:
  canto annotate 今日我要上堂
  echo 好學生 | canto annotate --json`,
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().BoolVar(&annotateJSON, "json", false, "emit tokens as JSON")
	annotateCmd.Flags().BoolVar(&annotateMandarin, "mandarin", false, "add a Mandarin pinyin row")
	annotateCmd.Flags().BoolVar(&annotateCopy, "copy", false, "copy the Jyutping line to the clipboard")
	annotateCmd.Flags().BoolVar(&annotateNoYale, "no-yale", false, "suppress the Yale row")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	a, cfg, err := loadAnnotator()
	if err != nil {
		return err
	}

	tokens := a.Annotate(text)

	if annotateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		return enc.Encode(tokens)
	}

	showYale := cfg.Display.Yale && !annotateNoYale
	showMandarin := cfg.Display.Mandarin || annotateMandarin
	printTokenTable(os.Stdout, tokens, showYale, showMandarin)

	if annotateCopy {
		if err := clipboard.Write(readingLine(tokens)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	return nil
}

// inputText joins the args, or reads stdin when there are none.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// printTokenTable writes aligned rows: words, Jyutping, optionally Yale
// and Mandarin pinyin. Column widths are display widths, so CJK words
// line up with their romanizations.
func printTokenTable(w io.Writer, tokens []canto.Token, showYale, showMandarin bool) {
	var conv *mandarin.Converter
	if showMandarin {
		conv = mandarin.NewConverter()
	}

	var words, jyut, yales, pinyins []string
	for _, t := range tokens {
		pinyin := ""
		if conv != nil {
			pinyin = conv.Reading(t.Word)
		}

		width := runewidth.StringWidth(t.Word)
		width = max(width, runewidth.StringWidth(t.Jyutping))
		if showYale {
			width = max(width, runewidth.StringWidth(t.Yale))
		}
		if showMandarin {
			width = max(width, runewidth.StringWidth(pinyin))
		}

		words = append(words, padCell(t.Word, width))
		jyut = append(jyut, padCell(t.Jyutping, width))
		yales = append(yales, padCell(t.Yale, width))
		pinyins = append(pinyins, padCell(pinyin, width))
	}

	fmt.Fprintln(w, strings.TrimRight(strings.Join(words, "  "), " "))
	fmt.Fprintln(w, strings.TrimRight(strings.Join(jyut, "  "), " "))
	if showYale {
		fmt.Fprintln(w, strings.TrimRight(strings.Join(yales, "  "), " "))
	}
	if showMandarin {
		fmt.Fprintln(w, strings.TrimRight(strings.Join(pinyins, "  "), " "))
	}
}

func padCell(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func readingLine(tokens []canto.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.HasReading() {
			parts = append(parts, t.Jyutping)
		}
	}
	return strings.Join(parts, " ")
}
