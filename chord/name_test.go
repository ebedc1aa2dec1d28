package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	cases := []struct {
		symbol     string
		root       string
		quality    string
		extensions []string
		bass       string
		notes      []string
	}{
		{"C", "C", "", nil, "C", []string{"C", "E", "G"}},
		{"Cmaj", "C", "maj", nil, "C", []string{"C", "E", "G"}},
		{"Cm", "C", "m", nil, "C", []string{"C", "Eb", "G"}},
		{"Cdim", "C", "dim", nil, "C", []string{"C", "Eb", "Gb"}},
		// key-bias spelling: C is a flat key, so the raised fifth comes
		// out as Ab rather than G#
		{"Caug", "C", "aug", nil, "C", []string{"C", "E", "Ab"}},
		{"Csus4", "C", "sus4", nil, "C", []string{"C", "F", "G"}},
		{"Cmaj7", "C", "maj7", nil, "C", []string{"C", "E", "G", "B"}},
		{"C7", "C", "7", nil, "C", []string{"C", "E", "G", "Bb"}},
		{"Cm7b5", "C", "m7b5", nil, "C", []string{"C", "Eb", "Gb", "Bb"}},
		{"C6", "C", "6", nil, "C", []string{"C", "E", "G", "A"}},
		{"F#", "F#", "", nil, "F#", []string{"F#", "A#", "C#"}},
		{"F#m7b5", "F#", "m7b5", nil, "F#", []string{"F#", "A", "C", "E"}},
		// slash basses: chord tones rotate, foreign basses prepend
		{"Bbmaj7/D", "Bb", "maj7", nil, "D", []string{"D", "F", "A", "Bb"}},
		{"F#m7b5/E", "F#", "m7b5", nil, "E", []string{"E", "F#", "A", "C"}},
		{"C/D", "C", "", nil, "D", []string{"D", "C", "E", "G"}},
		{"C/C", "C", "", nil, "C", []string{"C", "E", "G"}},
		{"Gm/Bb", "G", "m", nil, "Bb", []string{"A#", "D", "G"}},
		// extensions
		{"C9", "C", "", []string{"9"}, "C", []string{"C", "E", "G"}},
		{"Cm#11", "C", "m", []string{"#11"}, "C", []string{"C", "Eb", "G"}},
		{"D7b13/F#", "D", "7", []string{"b13"}, "F#", []string{"F#", "A", "C", "D"}},
		{"Cmaj79", "C", "maj7", []string{"9"}, "C", []string{"C", "E", "G", "B"}},
	}
	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			n, err := ParseName(tc.symbol)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(tc.root, n.Root())
			assert.Equal(tc.quality, n.Quality())
			if tc.extensions == nil {
				assert.Empty(n.Extensions())
			} else {
				assert.Equal(tc.extensions, n.Extensions())
			}
			assert.Equal(tc.bass, n.Bass())
			assert.Equal(tc.notes, n.NoteNames())
		})
	}
}

func TestParseNameExtensionSpelling(t *testing.T) {
	n, err := ParseName("Cm#11")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"F#"}, n.ExtensionNames())
}

func TestParseNameSlashWithExtensions(t *testing.T) {
	n, err := ParseName("Cmaj7#11/E")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C", n.Root())
	assert.Equal("maj7", n.Quality())
	assert.Equal([]string{"#11"}, n.Extensions())
	assert.Equal("E", n.Bass())
	assert.Equal([]int{0, 4, 7, 11, 18}, n.Intervals())
}

func TestParseNameErrors(t *testing.T) {
	for _, symbol := range []string{"Hb7", "Cfoo", "Cmaj7x", "C/H", ""} {
		_, err := ParseName(symbol)
		assert.ErrorIs(t, err, ErrChordParse, symbol)
	}
}

func TestNameStringRoundTrip(t *testing.T) {
	for _, symbol := range []string{"C", "F#m7b5", "Bbmaj7/D", "Cmaj7#11/E", "D7b13/F#"} {
		n, err := ParseName(symbol)

		assert := assert.New(t)
		assert.NoError(err)
		assert.Equal(symbol, n.String())

		again, err := ParseName(n.String())
		assert.NoError(err)
		assert.Equal(n.Intervals(), again.Intervals())
		assert.Equal(n.Bass(), again.Bass())
	}
}
