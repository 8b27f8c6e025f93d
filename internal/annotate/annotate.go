// Package annotate ties segmentation and romanization together: it is the
// surface a host embeds to turn raw text into {word, jyutping, yale}
// tokens ready for serialization.
package annotate

import (
	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/dict"
	"github.com/f3rmion/canto/internal/segment"
	"github.com/f3rmion/canto/internal/trie"
	"github.com/f3rmion/canto/internal/yale"
)

// Annotator segments text and derives a Yale reading for every token that
// carries Jyutping. It is immutable after construction and safe for
// concurrent use.
type Annotator struct {
	trie *trie.Trie
	seg  *segment.Segmenter
}

// New builds an Annotator from parsed dictionary sources.
func New(src *dict.Sources) *Annotator {
	t := trie.Build(src)
	return &Annotator{
		trie: t,
		seg:  segment.New(t, src.FrequencyTable()),
	}
}

// FromDir loads the dictionary sources from dir and builds an Annotator.
func FromDir(dir string) (*Annotator, error) {
	src, err := dict.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return New(src), nil
}

// Annotate segments text and fills in Yale readings. A malformed Jyutping
// reading leaves that token's Yale empty; it never aborts the rest of the
// input.
func (a *Annotator) Annotate(text string) []canto.Token {
	tokens := a.seg.Segment(text)
	for i := range tokens {
		if tokens[i].Jyutping == "" {
			continue
		}
		if y, err := yale.Convert(tokens[i].Jyutping); err == nil {
			tokens[i].Yale = y
		}
	}
	return tokens
}

// Segment tokenizes without deriving Yale readings.
func (a *Annotator) Segment(text string) []canto.Token {
	return a.seg.Segment(text)
}

// Readings returns every dictionary reading for the exact key, primary
// first, or nil when the key is unknown.
func (a *Annotator) Readings(key string) []string {
	return a.trie.Readings(key)
}
