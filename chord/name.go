package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
)

// qualityIntervals maps a quality token to its chord-tone intervals in
// semitones from the root. The empty token is a plain major triad.
var qualityIntervals = map[string][]int{
	"":        {0, 4, 7},
	"maj":     {0, 4, 7},
	"M":       {0, 4, 7},
	"min":     {0, 3, 7},
	"m":       {0, 3, 7},
	"dim":     {0, 3, 6},
	"aug":     {0, 4, 8},
	"sus2":    {0, 2, 7},
	"sus4":    {0, 5, 7},
	"maj7":    {0, 4, 7, 11},
	"M7":      {0, 4, 7, 11},
	"7":       {0, 4, 7, 10},
	"minmaj7": {0, 3, 7, 11},
	"mM7":     {0, 3, 7, 11},
	"mmaj7":   {0, 3, 7, 11},
	"minM7":   {0, 3, 7, 11},
	"min7":    {0, 3, 7, 10},
	"m7":      {0, 3, 7, 10},
	"m7b5":    {0, 3, 6, 10},
	"dim7":    {0, 3, 6, 9},
	"aug7":    {0, 4, 8, 10},
	"6":       {0, 4, 7, 9},
}

// extensionIntervals maps extension/alteration tokens (9ths, 11ths,
// 13ths with optional accidental) to semitones above the root, an octave
// up from the matching scale degree.
var extensionIntervals = map[string]int{
	"b9":  13,
	"9":   14,
	"#9":  15,
	"b11": 16,
	"11":  17,
	"#11": 18,
	"b13": 20,
	"13":  21,
	"#13": 22,
}

var flatKeys = []string{"C", "F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb", "Fb", "Bbb", "Ebb", "Abb", "Dbb"}
var sharpKeys = []string{"G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#", "E#", "B#", "F##"}

// keyBias gives the enharmonic spelling convention for each root.
var keyBias = buildKeyBias()

func buildKeyBias() map[string]pitch.Bias {
	m := make(map[string]pitch.Bias, len(flatKeys)+len(sharpKeys))
	for _, k := range flatKeys {
		m[k] = pitch.Flat
	}
	for _, k := range sharpKeys {
		m[k] = pitch.Sharp
	}
	return m
}

// Name is a parsed chord symbol: root pitch class, quality, extension
// tokens, and an optional slash bass that need not be a chord tone.
type Name struct {
	root       string
	quality    string
	extensions []string
	bass       string

	noteNames      []string // bass-first chord tone names
	extensionNames []string
}

// ParseName parses a chord symbol like "Bbmaj7", "F#m7b5", "Cmaj7#11/E"
// or "G/B". Unknown roots, qualities, or extension tokens are rejected.
func ParseName(symbol string) (Name, error) {
	remainder := symbol
	bass := ""
	if idx := strings.IndexByte(remainder, '/'); idx >= 0 {
		bass = remainder[idx+1:]
		remainder = remainder[:idx]
		if _, err := pitch.New(bass, 0); err != nil {
			return Name{}, fmt.Errorf("%w: bad bass in %q", ErrChordParse, symbol)
		}
	}

	root, ok := longestPrefix(remainder, rootTokens())
	if !ok {
		return Name{}, fmt.Errorf("%w: bad root in %q", ErrChordParse, symbol)
	}
	remainder = remainder[len(root):]
	if bass == "" {
		bass = root
	}

	// the empty quality token always matches, giving a major triad
	quality, _ := longestPrefix(remainder, qualityTokens())
	remainder = remainder[len(quality):]

	var extensions []string
	for remainder != "" {
		ext, ok := longestPrefix(remainder, extensionTokens())
		if !ok {
			return Name{}, fmt.Errorf("%w: bad extension %q in %q", ErrChordParse, remainder, symbol)
		}
		extensions = append(extensions, ext)
		remainder = remainder[len(ext):]
	}

	n := Name{root: root, quality: quality, extensions: extensions, bass: bass}
	n.noteNames, n.extensionNames = n.spellTones()
	return n, nil
}

// spellTones derives the bass-first chord tone names and the extension
// names using the root's key spelling bias.
func (n Name) spellTones() (noteNames, extensionNames []string) {
	bias := keyBias[n.root]
	rootNote, _ := pitch.New(n.root, 0)
	for _, interval := range qualityIntervals[n.quality] {
		noteNames = append(noteNames, rootNote.AddBias(interval, bias).Name())
	}

	bassNote, _ := pitch.New(n.bass, 0)
	bassIndex := -1
	for i, name := range noteNames {
		tone, _ := pitch.New(name, 0)
		if tone.SameClass(bassNote) {
			bassIndex = i
		}
	}
	if bassIndex >= 0 {
		noteNames = append(noteNames[bassIndex:], noteNames[:bassIndex]...)
	} else {
		noteNames = append([]string{n.bass}, noteNames...)
	}

	extRoot, _ := pitch.New(n.root, 1)
	for _, ext := range n.extensions {
		extBias := bias
		switch ext[0] {
		case '#':
			extBias = pitch.Sharp
		case 'b':
			extBias = pitch.Flat
		}
		extensionNames = append(extensionNames, extRoot.AddBias(extensionIntervals[ext]-12, extBias).Name())
	}
	return noteNames, extensionNames
}

func (n Name) Root() string { return n.root }

func (n Name) Quality() string { return n.quality }

func (n Name) Extensions() []string {
	out := make([]string, len(n.extensions))
	copy(out, n.extensions)
	return out
}

// Bass returns the sounding bass pitch class (the slash note, or the
// root when no slash is present).
func (n Name) Bass() string { return n.bass }

// NoteNames returns the chord tone names, bass first.
func (n Name) NoteNames() []string {
	out := make([]string, len(n.noteNames))
	copy(out, n.noteNames)
	return out
}

// ExtensionNames returns the spelled names of the extension tones.
func (n Name) ExtensionNames() []string {
	out := make([]string, len(n.extensionNames))
	copy(out, n.extensionNames)
	return out
}

// Intervals returns the semitone offsets from the root covered by the
// symbol: quality tones plus extensions, ascending.
func (n Name) Intervals() []int {
	out := append([]int(nil), qualityIntervals[n.quality]...)
	for _, ext := range n.extensions {
		out = append(out, extensionIntervals[ext])
	}
	sort.Ints(out)
	return out
}

// String renders the canonical symbol; re-parsing it yields an
// equivalent pitch-class set and bass.
func (n Name) String() string {
	s := n.root + n.quality + strings.Join(n.extensions, "")
	if n.bass != n.root {
		s += "/" + n.bass
	}
	return s
}

func rootTokens() []string { return util.GetKeys(keyBias) }

func qualityTokens() []string { return util.GetKeys(qualityIntervals) }

func extensionTokens() []string { return util.GetKeys(extensionIntervals) }

// longestPrefix returns the longest token that prefixes s.
func longestPrefix(s string, tokens []string) (string, bool) {
	best := ""
	found := false
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) && (!found || len(tok) > len(best)) {
			best = tok
			found = true
		}
	}
	return best, found
}
