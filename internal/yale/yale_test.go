package yale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDiacritics(t *testing.T) {
	tests := []struct {
		jyutping string
		want     string
	}{
		// tone 1: macron
		{"gam1", "gām"},
		{"si1", "sī"},
		{"jat1", "yāt"},
		{"saan1", "sāan"},
		// tone 2: acute
		{"hou2", "hóu"},
		// tone 3: no mark
		{"si3", "si"},
		{"heoi3", "heui"},
		{"baak3", "baak"},
		// tone 4: grave + h
		{"tong4", "tòhng"},
		{"haam4", "hàahm"},
		// tone 5: acute + h
		{"ngo5", "ngóh"},
		{"soeng5", "séuhng"},
		{"keoi5", "kéuih"},
		// tone 6: no mark + h
		{"jat6", "yaht"},
		{"hai6", "haih"},
		{"hok6", "hohk"},
		{"sap6", "sahp"},
		// initial substitutions
		{"zi1", "jī"},
		{"ci1", "chī"},
		{"ji1", "yī"},
		// bare aa contracts
		{"aa3", "a"},
		{"waa2", "wá"},
		// syllabic nasals
		{"m4", "mh"},
		{"ng5", "ngh"},
	}

	for _, tt := range tests {
		t.Run(tt.jyutping, func(t *testing.T) {
			got, err := Convert(tt.jyutping)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertMultiSyllable(t *testing.T) {
	got, err := Convert("soeng5 tong4")
	require.NoError(t, err)
	assert.Equal(t, "séuhng tòhng", got)

	got, err = Convert("gam1 jat6")
	require.NoError(t, err)
	assert.Equal(t, "gām yaht", got)
}

func TestConvertNumeric(t *testing.T) {
	tests := []struct {
		jyutping string
		want     string
	}{
		{"keoi5", "keui5"},
		{"heoi3", "heui3"},
		{"zi1", "ji1"},
		{"ci1", "chi1"},
		{"ji1", "yi1"},
		{"aa3", "a3"},
		{"saan1", "saan1"},
		{"gwong2 dung1 waa2", "gwong2 dung1 wa2"},
	}

	for _, tt := range tests {
		t.Run(tt.jyutping, func(t *testing.T) {
			got, err := ConvertNumeric(tt.jyutping)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertMalformed(t *testing.T) {
	tests := []struct {
		name     string
		jyutping string
	}{
		{"no tone digit", "gam"},
		{"tone out of range", "gam7"},
		{"tone zero", "gam0"},
		{"unrecognized final", "xyz1"},
		{"bare consonant", "b1"},
		{"empty string", ""},
		{"bad syllable mid-reading", "gam1 bogus jat6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.jyutping)
			require.Error(t, err)

			var malformed *MalformedSyllableError
			assert.True(t, errors.As(err, &malformed),
				"malformed input must surface as MalformedSyllableError")
		})
	}
}

func TestConvertNFCOutput(t *testing.T) {
	// Diacritics must collapse to precomposed codepoints, not remain as
	// combining marks after the base vowel.
	got, err := Convert("si1")
	require.NoError(t, err)
	assert.Equal(t, []rune{'s', 'ī'}, []rune(got))
}
