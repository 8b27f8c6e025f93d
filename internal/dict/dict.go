// Package dict parses the raw dictionary sources into typed records.
//
// Four line-oriented TSV sources feed the annotator:
//
//	chars.tsv    key <TAB> reading [<TAB> NN%]   single characters
//	words.tsv    key <TAB> reading               multi-character words
//	lettered.tsv key <TAB> reading               mixed Latin+CJK entries
//	freq.tsv     key <TAB> count                 word occurrence counts
//
// A reading without a percentage is the character's default pronunciation
// and sorts before every percentage-qualified reading.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultWeight is assigned to char readings that carry no percentage.
// It is above every valid percentage so unqualified readings sort first.
const DefaultWeight = 100

// CharEntry is one reading of a single character.
type CharEntry struct {
	Char    rune
	Reading string
	Weight  int // 0..100, DefaultWeight when the source had no percentage
}

// WordEntry is a multi-character word with its reading.
type WordEntry struct {
	Word    string
	Reading string
}

// LetteredEntry is a mixed Latin+CJK entry, possibly containing the
// connector characters -, _ and ' as literal key characters.
type LetteredEntry struct {
	Word    string
	Reading string
}

// FreqEntry is a word occurrence count used as a segmentation tie-breaker.
type FreqEntry struct {
	Word  string
	Count uint64
}

// MalformedEntryError reports a source line that failed to parse.
// Build-time dictionary errors are fatal: the annotator cannot run on a
// partially loaded dictionary, so bad lines are never silently skipped.
type MalformedEntryError struct {
	Source string // file path or source name
	Line   int    // 1-based line number
	Text   string // the offending line
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("%s:%d: malformed dictionary entry %q: %s", e.Source, e.Line, e.Text, e.Reason)
}

// FrequencyTable maps a word to its occurrence count. Words absent from
// the table have frequency 0. The table is independent of the trie and is
// consulted with exact-match keys only.
type FrequencyTable map[string]uint64

// Freq returns the count for word, or 0 when absent.
func (t FrequencyTable) Freq(word string) uint64 {
	return t[word]
}

// ParseCharEntry parses one chars.tsv record: key, reading, optional NN%.
func ParseCharEntry(line string) (CharEntry, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 || len(parts) > 3 {
		return CharEntry{}, fmt.Errorf("want 2 or 3 tab-separated fields, got %d", len(parts))
	}
	key := []rune(parts[0])
	if len(key) != 1 {
		return CharEntry{}, fmt.Errorf("key %q is not a single character", parts[0])
	}
	reading := strings.TrimSpace(parts[1])
	if reading == "" {
		return CharEntry{}, fmt.Errorf("empty reading")
	}
	weight := DefaultWeight
	if len(parts) == 3 {
		w, err := parsePercent(parts[2])
		if err != nil {
			return CharEntry{}, err
		}
		weight = w
	}
	return CharEntry{Char: key[0], Reading: reading, Weight: weight}, nil
}

// ParseWordEntry parses one words.tsv record. The key must be at least
// two characters; single characters belong in chars.tsv.
func ParseWordEntry(line string) (WordEntry, error) {
	key, reading, err := parsePair(line)
	if err != nil {
		return WordEntry{}, err
	}
	if len([]rune(key)) < 2 {
		return WordEntry{}, fmt.Errorf("key %q is shorter than two characters", key)
	}
	return WordEntry{Word: key, Reading: reading}, nil
}

// ParseLetteredEntry parses one lettered.tsv record. Single-character
// keys (%, D, K, ...) are valid here, unlike in words.tsv.
func ParseLetteredEntry(line string) (LetteredEntry, error) {
	key, reading, err := parsePair(line)
	if err != nil {
		return LetteredEntry{}, err
	}
	return LetteredEntry{Word: key, Reading: reading}, nil
}

// ParseFreqEntry parses one freq.tsv record: key, unsigned count.
func ParseFreqEntry(line string) (FreqEntry, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != 2 {
		return FreqEntry{}, fmt.Errorf("want 2 tab-separated fields, got %d", len(parts))
	}
	if parts[0] == "" {
		return FreqEntry{}, fmt.Errorf("empty key")
	}
	count, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return FreqEntry{}, fmt.Errorf("count %q is not an unsigned integer", parts[1])
	}
	return FreqEntry{Word: parts[0], Count: count}, nil
}

func parsePair(line string) (key, reading string, err error) {
	parts := strings.Split(line, "\t")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want 2 tab-separated fields, got %d", len(parts))
	}
	if parts[0] == "" {
		return "", "", fmt.Errorf("empty key")
	}
	reading = strings.TrimSpace(parts[1])
	if reading == "" {
		return "", "", fmt.Errorf("empty reading")
	}
	return parts[0], reading, nil
}

func parsePercent(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("weight %q has no %% suffix", s)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil || n < 0 || n > 100 {
		return 0, fmt.Errorf("weight %q is not a percentage in [0,100]", s)
	}
	return n, nil
}

// Sources holds the fully parsed dictionary record streams, in the order
// the trie build phase consumes them.
type Sources struct {
	Chars    []CharEntry
	Words    []WordEntry
	Lettered []LetteredEntry
	Freqs    []FreqEntry
}

// FrequencyTable builds the lookup table from the parsed freq records.
func (s *Sources) FrequencyTable() FrequencyTable {
	t := make(FrequencyTable, len(s.Freqs))
	for _, f := range s.Freqs {
		t[f.Word] = f.Count
	}
	return t
}

// readLines feeds every non-blank, non-comment line of r to parse,
// wrapping the first failure in a MalformedEntryError.
func readLines(r io.Reader, source string, parse func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parse(line); err != nil {
			return &MalformedEntryError{Source: source, Line: lineNum, Text: line, Reason: err.Error()}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	return nil
}

// ReadChars parses a chars.tsv stream.
func ReadChars(r io.Reader, source string) ([]CharEntry, error) {
	var entries []CharEntry
	err := readLines(r, source, func(line string) error {
		e, err := ParseCharEntry(line)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// ReadWords parses a words.tsv stream.
func ReadWords(r io.Reader, source string) ([]WordEntry, error) {
	var entries []WordEntry
	err := readLines(r, source, func(line string) error {
		e, err := ParseWordEntry(line)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// ReadLettered parses a lettered.tsv stream.
func ReadLettered(r io.Reader, source string) ([]LetteredEntry, error) {
	var entries []LetteredEntry
	err := readLines(r, source, func(line string) error {
		e, err := ParseLetteredEntry(line)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// ReadFreqs parses a freq.tsv stream.
func ReadFreqs(r io.Reader, source string) ([]FreqEntry, error) {
	var entries []FreqEntry
	err := readLines(r, source, func(line string) error {
		e, err := ParseFreqEntry(line)
		if err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// LoadDir loads chars.tsv, words.tsv, lettered.tsv and freq.tsv from dir.
// lettered.tsv and freq.tsv are optional; the char and word sources are
// required.
func LoadDir(dir string) (*Sources, error) {
	src := &Sources{}

	chars, err := loadFile(dir, "chars.tsv", false, ReadChars)
	if err != nil {
		return nil, err
	}
	src.Chars = chars

	words, err := loadFile(dir, "words.tsv", false, ReadWords)
	if err != nil {
		return nil, err
	}
	src.Words = words

	lettered, err := loadFile(dir, "lettered.tsv", true, ReadLettered)
	if err != nil {
		return nil, err
	}
	src.Lettered = lettered

	freqs, err := loadFile(dir, "freq.tsv", true, ReadFreqs)
	if err != nil {
		return nil, err
	}
	src.Freqs = freqs

	return src, nil
}

func loadFile[T any](dir, name string, optional bool, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()
	return read(f, path)
}
