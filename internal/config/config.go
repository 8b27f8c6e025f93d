// Package config handles loading and saving user configuration for canto.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default dictionary source URLs, overridable in config.yaml.
const (
	DefaultCharsURL    = "https://raw.githubusercontent.com/f3rmion/canto-data/main/chars.tsv"
	DefaultWordsURL    = "https://raw.githubusercontent.com/f3rmion/canto-data/main/words.tsv"
	DefaultLetteredURL = "https://raw.githubusercontent.com/f3rmion/canto-data/main/lettered.tsv"
	DefaultFreqURL     = "https://raw.githubusercontent.com/f3rmion/canto-data/main/freq.tsv"
)

// Sources holds the download URLs for the four dictionary files.
type Sources struct {
	Chars    string `yaml:"chars"`
	Words    string `yaml:"words"`
	Lettered string `yaml:"lettered"`
	Freq     string `yaml:"freq"`
}

// Display holds output preferences for the CLI and TUI.
type Display struct {
	Yale     bool `yaml:"yale"`     // show the Yale column
	Mandarin bool `yaml:"mandarin"` // show a Mandarin pinyin column
}

// Config is the user configuration stored at ~/.config/canto/config.yaml.
type Config struct {
	DataDir string  `yaml:"data_dir"` // directory holding the dictionary TSVs
	Sources Sources `yaml:"sources"`
	Display Display `yaml:"display"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	dir, _ := DataDir()
	return &Config{
		DataDir: dir,
		Sources: Sources{
			Chars:    DefaultCharsURL,
			Words:    DefaultWordsURL,
			Lettered: DefaultLetteredURL,
			Freq:     DefaultFreqURL,
		},
		Display: Display{Yale: true},
	}
}

// Load reads the config file at path, filling unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise Default.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Dir returns the default configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "canto"), nil
}

// DataDir returns the default dictionary data directory.
func DataDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// EnsureDirs creates the config and data directories if missing and
// returns the config directory.
func EnsureDirs() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	data, err := DataDir()
	if err != nil {
		return "", err
	}
	for _, d := range []string{dir, data} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}
