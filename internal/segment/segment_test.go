package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/dict"
	"github.com/f3rmion/canto/internal/trie"
)

// fixtureSources is a small dictionary exercising every span kind: char
// readings with percentage alternatives, ambiguous word boundaries with
// frequency data, and lettered entries including single symbols.
func fixtureSources() *dict.Sources {
	char := func(c rune, r string) dict.CharEntry {
		return dict.CharEntry{Char: c, Reading: r, Weight: dict.DefaultWeight}
	}
	return &dict.Sources{
		Chars: []dict.CharEntry{
			char('好', "hou2"),
			char('學', "hok6"),
			char('生', "saang1"),
			char('今', "gam1"),
			char('日', "jat6"),
			char('我', "ngo5"),
			char('要', "jiu3"),
			char('上', "soeng6"),
			char('堂', "tong4"),
			char('係', "hai6"),
			{Char: '佢', Reading: "keoi5", Weight: dict.DefaultWeight},
			{Char: '佢', Reading: "heoi5", Weight: 3},
		},
		Words: []dict.WordEntry{
			{Word: "學生", Reading: "hok6 saang1"},
			{Word: "好學", Reading: "hou3 hok6"},
			{Word: "今日", Reading: "gam1 jat6"},
			{Word: "上堂", Reading: "soeng5 tong4"},
			{Word: "都會大學", Reading: "dou1 wui6 daai6 hok6"},
		},
		Lettered: []dict.LetteredEntry{
			{Word: "%", Reading: "pat6 sen1"},
			{Word: "ge", Reading: "ge3"},
		},
		Freqs: []dict.FreqEntry{
			{Word: "學生", Count: 71278},
			{Word: "好學", Count: 2847},
		},
	}
}

func fixtureSegmenter() *Segmenter {
	src := fixtureSources()
	return New(trie.Build(src), src.FrequencyTable())
}

func words(tokens []canto.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Word
	}
	return out
}

func TestFrequencyDominance(t *testing.T) {
	s := fixtureSegmenter()

	// 學生's frequency dominates 好學's, so the boundary falls after 好.
	tokens := s.Segment("好學生")
	require.Equal(t, []string{"好", "學生"}, words(tokens))
	assert.Equal(t, "hou2", tokens[0].Jyutping)
	assert.Equal(t, "hok6 saang1", tokens[1].Jyutping)
}

func TestMinimality(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("都會大學")
	require.Equal(t, []string{"都會大學"}, words(tokens))
	assert.Equal(t, "dou1 wui6 daai6 hok6", tokens[0].Jyutping)
}

func TestSentence(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("今日我要上堂")
	require.Equal(t, []string{"今日", "我", "要", "上堂"}, words(tokens))

	readings := make([]string, len(tokens))
	for i, tok := range tokens {
		readings[i] = tok.Jyutping
	}
	assert.Equal(t, []string{"gam1 jat6", "ngo5", "jiu3", "soeng5 tong4"}, readings)
}

func TestAlphaRunMerging(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("rust_canto")
	require.Equal(t, []string{"rust_canto"}, words(tokens))
	assert.False(t, tokens[0].HasReading())
}

func TestLetteredEntryBeatsAlphaRun(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("ge")
	require.Equal(t, []string{"ge"}, words(tokens))
	assert.Equal(t, "ge3", tokens[0].Jyutping,
		"a dictionary hit for the exact span must not be downgraded to a bare alpha run")
}

func TestPercentSignIsolation(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("3%")
	require.Equal(t, []string{"3", "%"}, words(tokens))
	assert.False(t, tokens[0].HasReading())
	assert.Equal(t, "pat6 sen1", tokens[1].Jyutping)
}

func TestConnectorsNotAtRunBoundaries(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("-abc-")
	require.Equal(t, []string{"-", "abc", "-"}, words(tokens))
}

func TestPrimaryReadingPrecedence(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("佢")
	require.Len(t, tokens, 1)
	assert.Equal(t, "keoi5", tokens[0].Jyutping)
}

func TestPunctuationOnly(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("？")
	require.Equal(t, []string{"？"}, words(tokens))
	assert.False(t, tokens[0].HasReading())
}

func TestEmptyInput(t *testing.T) {
	s := fixtureSegmenter()
	assert.Empty(t, s.Segment(""))
}

func TestSpansCoverInputExactly(t *testing.T) {
	s := fixtureSegmenter()

	inputs := []string{
		"今日我要上堂",
		"我係好學生",
		"rust_canto好學生3%？",
		"unknown字符 and spaces",
		"café part-time i'm",
	}
	for _, input := range inputs {
		tokens := s.Segment(input)

		assert.Equal(t, input, strings.Join(words(tokens), ""),
			"concatenated tokens must reproduce the input")

		at := 0
		for _, tok := range tokens {
			assert.Equal(t, at, tok.Start, "spans must be contiguous")
			assert.Greater(t, tok.End, tok.Start)
			at = tok.End
		}
		assert.Equal(t, len([]rune(input)), at)
	}
}

func TestDeterminism(t *testing.T) {
	s := fixtureSegmenter()

	input := "我係好學生rust_canto3%"
	first := s.Segment(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Segment(input))
	}
}

func TestUnknownScriptFallsBackToSingleChars(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("日々")
	require.Equal(t, []string{"日", "々"}, words(tokens))
	assert.Equal(t, "jat6", tokens[0].Jyutping)
	assert.False(t, tokens[1].HasReading())
}

func TestWhitespaceTokens(t *testing.T) {
	s := fixtureSegmenter()

	tokens := s.Segment("好 學")
	require.Equal(t, []string{"好", " ", "學"}, words(tokens))
	assert.False(t, tokens[1].HasReading())
}
