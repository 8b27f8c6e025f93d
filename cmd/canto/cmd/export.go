package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/canto/internal/config"
	"github.com/f3rmion/canto/internal/vocab"
)

var (
	exportDB   string
	exportList bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Annotate a document and store its vocabulary in SQLite",
	Long: `Annotate a text file (or stdin) and upsert every word that has a
Jyutping reading into a SQLite vocabulary database, counting repeat
sightings. Use --list to print the stored vocabulary instead.

Example:
  canto export notes.txt
  canto export --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDB, "db", "", "vocabulary database path (default is $HOME/.config/canto/vocab.db)")
	exportCmd.Flags().BoolVar(&exportList, "list", false, "print the stored vocabulary")
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath := exportDB
	if dbPath == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		dbPath = filepath.Join(dir, "vocab.db")
	}

	store, err := vocab.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if exportList {
		entries, err := store.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\t%d\n", e.Word, e.Jyutping, e.Yale, e.Seen)
		}
		return nil
	}

	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		text = string(data)
	} else {
		text, err = inputText(nil)
		if err != nil {
			return err
		}
	}

	a, _, err := loadAnnotator()
	if err != nil {
		return err
	}

	added, err := store.AddTokens(a.Annotate(text))
	if err != nil {
		return err
	}

	fmt.Printf("Stored %d words in %s\n", added, dbPath)
	return nil
}
