// Package mandarin derives Mandarin pinyin readings for comparison
// against the Cantonese annotation.
package mandarin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Converter wraps go-pinyin with tone-marked output.
type Converter struct {
	args gopinyin.Args
}

// NewConverter returns a Converter producing tone-marked syllables
// (e.g. 學生 → "xué shēng").
func NewConverter() *Converter {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	return &Converter{args: args}
}

// Reading returns the space-joined pinyin for the Han characters in word,
// or "" when the word contains none.
func (c *Converter) Reading(word string) string {
	rows := gopinyin.Pinyin(word, c.args)
	if len(rows) == 0 {
		return ""
	}
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			parts = append(parts, row[0])
		}
	}
	return strings.Join(parts, " ")
}
