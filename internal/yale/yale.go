// Package yale converts Jyutping syllables to Yale romanization.
//
// Each syllable splits into initial + final + tone digit. The initial and
// the vowel part of the final map through fixed substitution tables; the
// tone digit becomes a diacritic on the first vowel of the nucleus, and
// low-register tones (4-6) insert an h between the nucleus and the coda.
// The phoneme tables are explicit so undocumented shapes surface as
// errors instead of silently producing a wrong syllable.
package yale

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MalformedSyllableError reports a string that does not parse as a
// Jyutping syllable: no trailing tone digit 1-6, or no recognized
// initial/final decomposition. Dictionary data with bad readings
// surfaces here rather than producing an incorrect Yale form.
type MalformedSyllableError struct {
	Syllable string
	Reason   string
}

func (e *MalformedSyllableError) Error() string {
	return fmt.Sprintf("malformed jyutping syllable %q: %s", e.Syllable, e.Reason)
}

// Jyutping initials, longest first so gw/kw/ng win over g/k/n.
// Initials absent from yaleInitials pass through unchanged.
var initials = []string{
	"gw", "kw", "ng",
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "z", "c", "s", "j", "w",
}

var yaleInitials = map[string]string{
	"z": "j",
	"c": "ch",
	"j": "y",
}

// Vowel-nucleus substitutions applied to the final, in order: eoi must
// run before eo, and oeng/oek before oe. Finals absent from the table
// pass through unchanged; stop and nasal codas stay literal.
var yaleFinals = [...][2]string{
	{"eoi", "eui"},
	{"oeng", "eung"},
	{"oet", "eut"},
	{"oek", "euk"},
	{"oe", "eu"},
	{"eo", "eu"},
}

// The Jyutping final inventory, for rejecting bad decompositions.
// The empty final is valid only behind the syllabic nasals m and ng.
var finals = map[string]bool{
	"aa": true, "aai": true, "aau": true, "aam": true, "aan": true,
	"aang": true, "aap": true, "aat": true, "aak": true,
	"ai": true, "au": true, "am": true, "an": true, "ang": true,
	"ap": true, "at": true, "ak": true,
	"e": true, "ei": true, "eu": true, "em": true, "en": true,
	"eng": true, "ep": true, "et": true, "ek": true,
	"i": true, "iu": true, "im": true, "in": true, "ing": true,
	"ip": true, "it": true, "ik": true,
	"o": true, "oi": true, "ou": true, "om": true, "on": true,
	"ong": true, "op": true, "ot": true, "ok": true,
	"oe": true, "oeng": true, "oet": true, "oek": true,
	"eoi": true, "eon": true, "eot": true,
	"u": true, "ui": true, "um": true, "un": true, "ung": true,
	"up": true, "ut": true, "uk": true,
	"yu": true, "yun": true, "yut": true,
}

// Codas split off the final before diacritic placement; ng before n.
var codas = []string{"ng", "p", "t", "k", "m", "n"}

// Combining diacritics per tone. Tones 3 and 6 take no mark; tones 4-6
// are the low register and additionally insert h after the nucleus.
var toneMarks = map[int]rune{
	1: '\u0304', // combining macron, ā
	2: '\u0301', // combining acute, á
	4: '\u0300', // combining grave, à
	5: '\u0301', // combining acute, á
}

// Convert maps a space-separated Jyutping reading to Yale with tone
// diacritics, e.g. "soeng5 tong4" → "séuhng tòhng". The first malformed
// syllable aborts the whole reading.
func Convert(jyutping string) (string, error) {
	return convert(jyutping, true)
}

// ConvertNumeric maps a reading to Yale spelling with the tone digit kept,
// e.g. "keoi5" → "keui5".
func ConvertNumeric(jyutping string) (string, error) {
	return convert(jyutping, false)
}

func convert(jyutping string, diacritics bool) (string, error) {
	syllables := strings.Fields(jyutping)
	if len(syllables) == 0 {
		return "", &MalformedSyllableError{Syllable: jyutping, Reason: "empty reading"}
	}
	out := make([]string, len(syllables))
	for i, s := range syllables {
		y, err := ConvertSyllable(s, diacritics)
		if err != nil {
			return "", err
		}
		out[i] = y
	}
	return strings.Join(out, " "), nil
}

// ConvertSyllable converts a single Jyutping syllable.
func ConvertSyllable(syllable string, diacritics bool) (string, error) {
	body, tone, err := splitTone(syllable)
	if err != nil {
		return "", err
	}

	initial, fin := splitInitial(body)
	if !validFinal(initial, fin) {
		return "", &MalformedSyllableError{Syllable: syllable, Reason: fmt.Sprintf("unrecognized final %q", fin)}
	}

	yi := initial
	if mapped, ok := yaleInitials[initial]; ok {
		yi = mapped
	}
	yf := mapFinal(fin)

	// Bare aa (no coda) contracts to a single vowel: aa3 → a.
	if yf == "aa" {
		yf = "a"
	}

	if !diacritics {
		return fmt.Sprintf("%s%s%d", yi, yf, tone), nil
	}
	return applyTone(yi, yf, tone), nil
}

func splitTone(s string) (body string, tone int, err error) {
	if s == "" {
		return "", 0, &MalformedSyllableError{Syllable: s, Reason: "empty syllable"}
	}
	last := s[len(s)-1]
	if last < '1' || last > '6' {
		return "", 0, &MalformedSyllableError{Syllable: s, Reason: "no trailing tone digit 1-6"}
	}
	return s[:len(s)-1], int(last - '0'), nil
}

// splitInitial strips the longest matching initial; the remainder is the
// final. A syllable may have no initial at all (e.g. aa3, oi3).
func splitInitial(body string) (initial, fin string) {
	for _, i := range initials {
		if strings.HasPrefix(body, i) {
			return i, body[len(i):]
		}
	}
	return "", body
}

func validFinal(initial, fin string) bool {
	if fin == "" {
		// Syllabic nasals: m4 唔, ng5 五. The nasal itself was consumed
		// as the initial, leaving an empty final.
		return initial == "m" || initial == "ng"
	}
	return finals[fin]
}

func mapFinal(fin string) string {
	for _, sub := range yaleFinals {
		fin = strings.Replace(fin, sub[0], sub[1], 1)
	}
	return fin
}

// splitNucleusCoda splits the mapped final into vowel nucleus and coda
// consonant. Trailing glides i and u belong to the nucleus.
func splitNucleusCoda(fin string) (nucleus, coda string) {
	for _, c := range codas {
		if strings.HasSuffix(fin, c) {
			return fin[:len(fin)-len(c)], c
		}
	}
	return fin, ""
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// applyTone renders the Yale syllable: diacritic on the first nucleus
// vowel, h after the nucleus for the low register, coda last. Output is
// NFC-normalized so combining marks collapse to precomposed characters.
func applyTone(initial, fin string, tone int) string {
	nucleus, coda := splitNucleusCoda(fin)

	var b strings.Builder
	b.WriteString(initial)

	marked := false
	for _, r := range nucleus {
		b.WriteRune(r)
		if !marked && isVowel(r) {
			if mark, ok := toneMarks[tone]; ok {
				b.WriteRune(mark)
			}
			marked = true
		}
	}

	if tone >= 4 {
		b.WriteByte('h')
	}
	b.WriteString(coda)

	return norm.NFC.String(b.String())
}
