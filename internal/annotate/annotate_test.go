package annotate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/canto/internal/dict"
)

func fixtureAnnotator() *Annotator {
	char := func(c rune, r string) dict.CharEntry {
		return dict.CharEntry{Char: c, Reading: r, Weight: dict.DefaultWeight}
	}
	return New(&dict.Sources{
		Chars: []dict.CharEntry{
			char('今', "gam1"),
			char('日', "jat6"),
			char('我', "ngo5"),
			char('要', "jiu3"),
			char('上', "soeng6"),
			char('堂', "tong4"),
			char('壞', "bad reading"), // malformed on purpose
		},
		Words: []dict.WordEntry{
			{Word: "今日", Reading: "gam1 jat6"},
			{Word: "上堂", Reading: "soeng5 tong4"},
		},
		Lettered: []dict.LetteredEntry{
			{Word: "%", Reading: "pat6 sen1"},
		},
	})
}

func TestAnnotateEndToEnd(t *testing.T) {
	a := fixtureAnnotator()

	tokens := a.Annotate("今日我要上堂")
	require.Len(t, tokens, 4)

	type row struct{ word, jyutping, yale string }
	want := []row{
		{"今日", "gam1 jat6", "gām yaht"},
		{"我", "ngo5", "ngóh"},
		{"要", "jiu3", "yiu"},
		{"上堂", "soeng5 tong4", "séuhng tòhng"},
	}
	for i, w := range want {
		assert.Equal(t, w.word, tokens[i].Word)
		assert.Equal(t, w.jyutping, tokens[i].Jyutping)
		assert.Equal(t, w.yale, tokens[i].Yale)
	}
}

func TestAnnotatePunctuationOnly(t *testing.T) {
	a := fixtureAnnotator()

	tokens := a.Annotate("？")
	require.Len(t, tokens, 1)
	assert.Equal(t, "？", tokens[0].Word)
	assert.Empty(t, tokens[0].Jyutping)
	assert.Empty(t, tokens[0].Yale)
}

func TestAnnotateMalformedReadingIsLocal(t *testing.T) {
	a := fixtureAnnotator()

	// A bad dictionary reading costs that token its Yale form but must
	// not disturb the neighbours.
	tokens := a.Annotate("壞日")
	require.Len(t, tokens, 2)

	assert.Equal(t, "bad reading", tokens[0].Jyutping)
	assert.Empty(t, tokens[0].Yale)

	assert.Equal(t, "jat6", tokens[1].Jyutping)
	assert.Equal(t, "yaht", tokens[1].Yale)
}

func TestAnnotateJSONShape(t *testing.T) {
	a := fixtureAnnotator()

	data, err := json.Marshal(a.Annotate("日%x"))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "日", decoded[0]["word"])
	assert.Equal(t, "jat6", decoded[0]["jyutping"])
	assert.Equal(t, "yaht", decoded[0]["yale"])

	assert.Equal(t, "%", decoded[1]["word"])
	assert.Equal(t, "pat6 sen1", decoded[1]["jyutping"])

	_, hasJyutping := decoded[2]["jyutping"]
	assert.False(t, hasJyutping, "tokens without readings omit jyutping")
}

func TestReadings(t *testing.T) {
	a := fixtureAnnotator()

	assert.Equal(t, []string{"gam1 jat6"}, a.Readings("今日"))
	assert.Nil(t, a.Readings("冇"))
}

func TestSegmentSkipsYale(t *testing.T) {
	a := fixtureAnnotator()

	tokens := a.Segment("今日")
	require.Len(t, tokens, 1)
	assert.Equal(t, "gam1 jat6", tokens[0].Jyutping)
	assert.Empty(t, tokens[0].Yale)
}
