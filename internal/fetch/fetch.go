// Package fetch downloads the dictionary source files over HTTP.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/canto/internal/config"
)

// Client downloads dictionary sources into a data directory.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// File fetches url into dir/name, replacing any existing file. The
// download goes through a temp file so a failed transfer never leaves a
// truncated dictionary behind.
func (c *Client) File(url, dir, name string) error {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", name, resp.Status)
	}

	tmp, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("installing %s: %w", name, err)
	}
	return nil
}

// Sources downloads all four dictionary files into dir, reporting each
// file through progress when non-nil.
func (c *Client) Sources(src config.Sources, dir string, progress func(name string)) error {
	files := []struct {
		url  string
		name string
	}{
		{src.Chars, "chars.tsv"},
		{src.Words, "words.tsv"},
		{src.Lettered, "lettered.tsv"},
		{src.Freq, "freq.tsv"},
	}
	for _, f := range files {
		if f.url == "" {
			continue
		}
		if progress != nil {
			progress(f.name)
		}
		if err := c.File(f.url, dir, f.name); err != nil {
			return err
		}
	}
	return nil
}
