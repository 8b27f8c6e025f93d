// Package canto provides the core types shared across the Cantonese
// annotation pipeline.
package canto

import "unicode"

// Token is one segment of annotated input text. Tokens are immutable once
// produced: the segmentation engine returns a fresh slice per call.
type Token struct {
	Word     string `json:"word"`
	Start    int    `json:"start"` // rune offset, inclusive
	End      int    `json:"end"`   // rune offset, exclusive
	Jyutping string `json:"jyutping,omitempty"`
	Yale     string `json:"yale,omitempty"`
}

// HasReading reports whether the token carries a Jyutping reading.
// Unmatched alphanumeric runs and unknown symbols have none.
func (t Token) HasReading() bool {
	return t.Jyutping != ""
}

// IsCJK reports whether r is a CJK ideograph, including the extension
// blocks needed for rare Cantonese characters like 𠮩 (U+20BA9).
func IsCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // Extension A
		return true
	case r >= 0x20000 && r <= 0x2A6DF: // Extension B
		return true
	case r >= 0x2A700 && r <= 0x2B73F: // Extension C
		return true
	case r >= 0x2B740 && r <= 0x2B81F: // Extension D
		return true
	case r >= 0x2B820 && r <= 0x2CEAF: // Extension E
		return true
	case r >= 0xF900 && r <= 0xFAFF: // Compatibility Ideographs
		return true
	}
	return false
}

// IsAlpha reports whether r is a letter or digit outside the CJK blocks.
// These characters form the body of an alpha run: ASCII letters, digits,
// and accented letters like é.
func IsAlpha(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && !IsCJK(r)
}

// IsConnector reports whether r may join two alphanumeric characters
// inside an alpha run ("part-time", "rust_canto", "i'm"). Connectors are
// never valid at the start or end of a run.
func IsConnector(r rune) bool {
	return r == '-' || r == '_' || r == '\''
}
