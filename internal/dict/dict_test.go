package dict

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharEntry(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    CharEntry
		wantErr bool
	}{
		{
			name: "no percentage gets default weight",
			line: "佢\tkeoi5",
			want: CharEntry{Char: '佢', Reading: "keoi5", Weight: DefaultWeight},
		},
		{
			name: "percentage-qualified reading",
			line: "佢\theoi5\t3%",
			want: CharEntry{Char: '佢', Reading: "heoi5", Weight: 3},
		},
		{
			name:    "multi-character key",
			line:    "學生\thok6 saang1",
			wantErr: true,
		},
		{
			name:    "missing reading",
			line:    "佢",
			wantErr: true,
		},
		{
			name:    "weight without percent sign",
			line:    "佢\theoi5\t3",
			wantErr: true,
		},
		{
			name:    "weight out of range",
			line:    "佢\theoi5\t150%",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCharEntry(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWordEntry(t *testing.T) {
	got, err := ParseWordEntry("學生\thok6 saang1")
	require.NoError(t, err)
	assert.Equal(t, WordEntry{Word: "學生", Reading: "hok6 saang1"}, got)

	_, err = ParseWordEntry("學\thok6")
	assert.Error(t, err, "single characters belong in chars.tsv")
}

func TestParseLetteredEntry(t *testing.T) {
	got, err := ParseLetteredEntry("%\tpat6 sen1")
	require.NoError(t, err)
	assert.Equal(t, LetteredEntry{Word: "%", Reading: "pat6 sen1"}, got)

	got, err = ParseLetteredEntry("chok-cheat\tcok3 cit1")
	require.NoError(t, err)
	assert.Equal(t, "chok-cheat", got.Word)
}

func TestParseFreqEntry(t *testing.T) {
	got, err := ParseFreqEntry("學生\t71278")
	require.NoError(t, err)
	assert.Equal(t, FreqEntry{Word: "學生", Count: 71278}, got)

	_, err = ParseFreqEntry("學生\t-3")
	assert.Error(t, err)
}

func TestReadCharsReportsLineNumber(t *testing.T) {
	input := "好\thou2\n# comment\n\n學生\thok6 saang1\n"
	_, err := ReadChars(strings.NewReader(input), "chars.tsv")

	var malformed *MalformedEntryError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 4, malformed.Line)
	assert.Equal(t, "chars.tsv", malformed.Source)
	assert.Contains(t, malformed.Text, "學生")
}

func TestReadChars(t *testing.T) {
	input := "佢\tkeoi5\n佢\theoi5\t3%\n"
	entries, err := ReadChars(strings.NewReader(input), "chars.tsv")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, DefaultWeight, entries[0].Weight)
	assert.Equal(t, 3, entries[1].Weight)
}

func TestFrequencyTable(t *testing.T) {
	src := &Sources{Freqs: []FreqEntry{{Word: "學生", Count: 71278}}}
	table := src.FrequencyTable()

	assert.Equal(t, uint64(71278), table.Freq("學生"))
	assert.Equal(t, uint64(0), table.Freq("好學"), "absent words have frequency 0")
}
