package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/canto/internal/config"
	"github.com/f3rmion/canto/internal/fetch"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the config directory and download the dictionary sources",
	Long: `Create ~/.config/canto, write a default config.yaml if none exists,
and download the four dictionary sources (chars, words, lettered entries,
word frequencies) into the data directory.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := config.EnsureDirs()
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgPath)
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}

	client := fetch.NewClient()
	err = client.Sources(cfg.Sources, cfg.DataDir, func(name string) {
		fmt.Printf("Downloading %s...\n", name)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Dictionary installed in %s\n", cfg.DataDir)
	return nil
}
