// Package segment implements the dictionary-driven tokenizer.
//
// Segmentation is a single forward DP pass over the input runes. The cost
// of a tokenization is (token count, total frequency): fewer tokens wins,
// and on a tie the higher summed word frequency wins, so that genuine
// boundary ambiguity (好學生 → 好/學生 rather than 好學/生) resolves toward
// common words. Ties beyond that keep the first-discovered candidate,
// which makes the span evaluation order part of the contract: trie spans
// in increasing end order, then the alpha-run span, then the
// single-character fallback.
package segment

import (
	"math"

	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/dict"
	"github.com/f3rmion/canto/internal/trie"
)

// Segmenter tokenizes text against a built dictionary. It holds only
// read-only state and is safe for concurrent use.
type Segmenter struct {
	trie *trie.Trie
	freq dict.FrequencyTable
}

// New returns a Segmenter over the built trie and frequency table.
func New(t *trie.Trie, freq dict.FrequencyTable) *Segmenter {
	return &Segmenter{trie: t, freq: freq}
}

const unreached = math.MaxUint32

// cell is the best-known tokenization state ending at one rune offset.
type cell struct {
	tokens  uint32 // number of tokens consumed so far, unreached sentinel
	freq    uint64 // summed frequency of chosen spans
	prev    int    // start offset of the chosen span
	reading string // primary reading of the chosen span, "" when none
}

// better reports whether candidate strictly improves on current.
// Equal cost keeps current, so the first-discovered span wins ties.
func better(candTokens uint32, candFreq uint64, cur cell) bool {
	if cur.tokens == unreached {
		return true
	}
	if candTokens != cur.tokens {
		return candTokens < cur.tokens
	}
	return candFreq > cur.freq
}

// Segment tokenizes text. It is deterministic, total and side-effect
// free: every input, including empty strings and unknown scripts, yields
// a tokenization whose spans are contiguous, non-overlapping, and
// concatenate back to the input. Token offsets are rune offsets.
func (s *Segmenter) Segment(text string) []canto.Token {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	best := make([]cell, n+1)
	for i := range best {
		best[i].tokens = unreached
	}
	best[0].tokens = 0

	for i := 0; i < n; i++ {
		if best[i].tokens == unreached {
			continue
		}
		tokens := best[i].tokens + 1
		baseFreq := best[i].freq

		// Trie-walk spans, in increasing end order. Remember whether
		// the walk produced a terminal exactly at the alpha-run end so
		// the fallback below never shadows a dictionary entry.
		runEnd := s.alphaRunEnd(runes, i)
		runMatched := false

		w := s.trie.Walk(runes, i)
		for {
			end, primary, ok := w.Next()
			if !ok {
				break
			}
			if end == runEnd {
				runMatched = true
			}
			f := baseFreq + s.freq.Freq(string(runes[i:end]))
			if better(tokens, f, best[end]) {
				best[end] = cell{tokens: tokens, freq: f, prev: i, reading: primary}
			}
		}

		// Alpha-run span: the maximal connector-joined alphanumeric run,
		// only when it is at least two runes long and the dictionary has
		// no entry for the exact span.
		if runEnd > i+1 && !runMatched {
			if better(tokens, baseFreq, best[runEnd]) {
				best[runEnd] = cell{tokens: tokens, freq: baseFreq, prev: i}
			}
		}

		// Single-character fallback keeps every position reachable.
		single := string(runes[i])
		reading, _ := s.trie.PrimaryReading(single)
		f := baseFreq + s.freq.Freq(single)
		if better(tokens, f, best[i+1]) {
			best[i+1] = cell{tokens: tokens, freq: f, prev: i, reading: reading}
		}
	}

	// Reconstruct backwards from n. The single-character fallback
	// guarantees best[n] is reached.
	count := 0
	for at := n; at > 0; at = best[at].prev {
		count++
	}
	out := make([]canto.Token, count)
	for at := n; at > 0; at = best[at].prev {
		c := best[at]
		count--
		out[count] = canto.Token{
			Word:     string(runes[c.prev:at]),
			Start:    c.prev,
			End:      at,
			Jyutping: c.reading,
		}
	}
	return out
}

// alphaRunEnd returns the exclusive end of the maximal alpha run starting
// at i: non-CJK alphanumerics, with connectors permitted strictly between
// two alphanumerics. Returns i when runes[i] does not start a run.
func (s *Segmenter) alphaRunEnd(runes []rune, i int) int {
	n := len(runes)
	if i >= n || !canto.IsAlpha(runes[i]) {
		return i
	}
	j := i + 1
	for j < n {
		switch {
		case canto.IsAlpha(runes[j]):
			j++
		case canto.IsConnector(runes[j]) && j+1 < n && canto.IsAlpha(runes[j-1]) && canto.IsAlpha(runes[j+1]):
			j++
		default:
			return j
		}
	}
	return j
}
