// Package cmd contains all CLI commands for the canto tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/canto/internal/annotate"
	"github.com/f3rmion/canto/internal/config"
	"github.com/f3rmion/canto/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "canto",
	Short: "Cantonese segmentation and romanization",
	Long: `canto segments Cantonese (and mixed Cantonese/Latin) text into words
and annotates each word with its Jyutping reading plus a derived Yale
romanization.

The dictionary is loaded from four TSV sources (chars, words, lettered
entries, word frequencies); run 'canto init' once to download them.

Running 'canto' without arguments launches the interactive annotator.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/canto/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "dictionary data directory")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the config file and CANTO_* environment variables.
func initConfig() {
	if cfgFile == "" {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		cfgFile = filepath.Join(dir, "config.yaml")
	}

	viper.SetEnvPrefix("CANTO")
	viper.AutomaticEnv()
}

// loadConfig merges the config file with flag/env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if dir := viper.GetString("data_dir"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// loadAnnotator builds the annotator from the configured data directory.
func loadAnnotator() (*annotate.Annotator, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	a, err := annotate.FromDir(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading dictionary from %s (run 'canto init' to download it): %w", cfg.DataDir, err)
	}
	return a, cfg, nil
}

// runInteractive launches the interactive annotator TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	a, _, err := loadAnnotator()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
