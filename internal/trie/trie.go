// Package trie implements the dictionary prefix tree over runes.
//
// Nodes live in a flat arena indexed by int32 rather than as nested
// pointers; child lookup is a small per-node map from rune to arena index.
// The trie is built once from the parsed dictionary sources and is
// read-only afterwards, so it may be shared across goroutines freely.
package trie

import (
	"github.com/f3rmion/canto/internal/dict"
)

const root = 0

type reading struct {
	text   string
	weight int
}

type node struct {
	children map[rune]int32
	readings []reading // descending by weight; first entry is primary
}

// Trie is a prefix tree whose terminal nodes carry Jyutping readings.
type Trie struct {
	nodes []node
}

// New returns an empty trie containing only the root node.
func New() *Trie {
	return &Trie{nodes: make([]node, 1, 1024)}
}

// child returns the arena index of n's child for r, or -1.
func (t *Trie) child(n int32, r rune) int32 {
	if idx, ok := t.nodes[n].children[r]; ok {
		return idx
	}
	return -1
}

// ensureChild returns the arena index of n's child for r, creating it
// when missing.
func (t *Trie) ensureChild(n int32, r rune) int32 {
	if idx, ok := t.nodes[n].children[r]; ok {
		return idx
	}
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	if t.nodes[n].children == nil {
		t.nodes[n].children = make(map[rune]int32, 1)
	}
	t.nodes[n].children[r] = idx
	return idx
}

// InsertChar records one weighted reading for a single character.
// Readings are kept in descending weight order so that the unqualified
// reading (weight 100) stays primary ahead of percentage-qualified ones.
// Re-inserting an existing reading is a no-op.
func (t *Trie) InsertChar(ch rune, text string, weight int) {
	idx := t.ensureChild(root, ch)
	t.insertWeighted(idx, text, weight)
}

func (t *Trie) insertWeighted(idx int32, text string, weight int) {
	rs := t.nodes[idx].readings
	for _, r := range rs {
		if r.text == text {
			return
		}
	}
	pos := len(rs)
	for i, r := range rs {
		if r.weight < weight {
			pos = i
			break
		}
	}
	rs = append(rs, reading{})
	copy(rs[pos+1:], rs[pos:])
	rs[pos] = reading{text: text, weight: weight}
	t.nodes[idx].readings = rs
}

// InsertWord walks or creates the multi-step path for word and appends
// the reading to its terminal node. Readings already present on
// intermediate nodes (the single-character entries) are left untouched.
func (t *Trie) InsertWord(word, text string) {
	t.insertPath(word, text)
}

// InsertLettered inserts a mixed Latin+CJK entry. Connector characters
// (-, _, ') inside the key are literal trie-path characters. Unlike
// InsertWord, single-character keys are valid here.
func (t *Trie) InsertLettered(word, text string) {
	t.insertPath(word, text)
}

func (t *Trie) insertPath(word, text string) {
	if word == "" {
		return
	}
	idx := int32(root)
	for _, r := range word {
		idx = t.ensureChild(idx, r)
	}
	for _, r := range t.nodes[idx].readings {
		if r.text == text {
			return
		}
	}
	t.nodes[idx].readings = append(t.nodes[idx].readings, reading{text: text})
}

// PrimaryReading returns the highest-weight reading for the exact key,
// or "" and false when the key is absent or non-terminal.
func (t *Trie) PrimaryReading(key string) (string, bool) {
	idx := t.lookup(key)
	if idx < 0 || len(t.nodes[idx].readings) == 0 {
		return "", false
	}
	return t.nodes[idx].readings[0].text, true
}

// Readings returns every reading for the exact key in primary-first
// order, or nil when the key is absent or non-terminal.
func (t *Trie) Readings(key string) []string {
	idx := t.lookup(key)
	if idx < 0 || len(t.nodes[idx].readings) == 0 {
		return nil
	}
	out := make([]string, len(t.nodes[idx].readings))
	for i, r := range t.nodes[idx].readings {
		out[i] = r.text
	}
	return out
}

func (t *Trie) lookup(key string) int32 {
	idx := int32(root)
	for _, r := range key {
		idx = t.child(idx, r)
		if idx < 0 {
			return -1
		}
	}
	return idx
}

// Walker yields every terminal reachable from a start position, in
// increasing end order. It is lazy and finite; create a fresh Walker to
// restart.
type Walker struct {
	t    *Trie
	text []rune
	pos  int   // next rune to consume
	node int32 // current arena index, -1 once the path breaks
}

// Walk starts a walk over text beginning at rune offset start.
func (t *Trie) Walk(text []rune, start int) Walker {
	return Walker{t: t, text: text, pos: start, node: root}
}

// Next advances to the next terminal node on the path. It returns the
// exclusive end offset and the primary reading there. ok is false once
// the path leaves the trie or the text is exhausted.
func (w *Walker) Next() (end int, primary string, ok bool) {
	for w.node >= 0 && w.pos < len(w.text) {
		w.node = w.t.child(w.node, w.text[w.pos])
		if w.node < 0 {
			return 0, "", false
		}
		w.pos++
		if rs := w.t.nodes[w.node].readings; len(rs) > 0 {
			return w.pos, rs[0].text, true
		}
	}
	return 0, "", false
}

// Len returns the number of nodes in the arena, root included.
func (t *Trie) Len() int {
	return len(t.nodes)
}

// Build constructs the trie from the parsed sources, inserting in the
// load-bearing three-phase order: single characters first (weight-ordered
// readings), multi-character words second, lettered entries last. Later
// phases extend paths but never reorder the primary readings established
// by earlier phases.
func Build(src *dict.Sources) *Trie {
	t := New()
	for _, c := range src.Chars {
		t.InsertChar(c.Char, c.Reading, c.Weight)
	}
	for _, w := range src.Words {
		t.InsertWord(w.Word, w.Reading)
	}
	for _, l := range src.Lettered {
		t.InsertLettered(l.Word, l.Reading)
	}
	return t
}
